package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Form field identifiers, matching the JSON keys of the draft payload
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldStatus      = "status"
)

// FieldOrder is the display order of the form fields
var FieldOrder = []string{FieldName, FieldDescription, FieldStartDate, FieldEndDate, FieldStatus}

var fieldLabels = map[string]string{
	FieldName:        "Name",
	FieldDescription: "Description",
	FieldStartDate:   "Start Date",
	FieldEndDate:     "End Date",
	FieldStatus:      "Status",
}

// FieldLabel returns the human-readable label for a field key
func FieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// FieldErrors holds one message per violating form field
type FieldErrors map[string]string

// Ordered returns the non-empty messages in form field order
func (fe FieldErrors) Ordered() []string {
	var out []string
	for _, field := range FieldOrder {
		if msg, ok := fe[field]; ok {
			out = append(out, FieldLabel(field)+": "+msg)
		}
	}
	return out
}

// DraftValidator runs the client-side form checks. It mirrors the
// server's rules so that most mistakes are caught before any request is
// made. All violations are collected, one message per field.
type DraftValidator struct {
	v *validator.Validate
}

type todayKey struct{}

// NewDraftValidator builds the validator with the status and date rules
// registered.
func NewDraftValidator() *DraftValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("catalogstatus", func(fl validator.FieldLevel) bool {
		_, ok := ParseStatus(fl.Field().String())
		return ok
	})
	v.RegisterStructValidationCtx(validateDraftDates, Draft{})
	return &DraftValidator{v: v}
}

// Validate checks the draft against today's date (time of day is
// zeroed). It returns the per-field messages and whether the draft is
// ready for submission.
func (dv *DraftValidator) Validate(d Draft, today time.Time) (FieldErrors, bool) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	ctx := context.WithValue(context.Background(), todayKey{}, today)

	fe := FieldErrors{}
	err := dv.v.StructCtx(ctx, d.normalized())
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			fe[FieldName] = err.Error()
			return fe, false
		}
		for _, ve := range verrs {
			field, msg := draftMessage(ve)
			if msg == "" {
				continue
			}
			// The cross-field date check runs last and overrides any
			// earlier End Date message; everything else keeps the first
			// message reported for its field.
			if _, taken := fe[field]; taken && ve.Tag() != "endbeforestart" {
				continue
			}
			fe[field] = msg
		}
	}
	return fe, len(fe) == 0
}

// validateDraftDates reports date-content violations the tag rules
// cannot express: format, not-in-the-past, and end before start.
func validateDraftDates(ctx context.Context, sl validator.StructLevel) {
	d := sl.Current().Interface().(Draft)
	today, _ := ctx.Value(todayKey{}).(time.Time)

	var start, end time.Time
	var startOK, endOK bool

	if d.StartDate != "" {
		t, err := time.Parse(DateLayout, d.StartDate)
		if err != nil {
			sl.ReportError(d.StartDate, "StartDate", "StartDate", "dateformat", "")
		} else {
			start, startOK = t, true
			if t.Before(today) {
				sl.ReportError(d.StartDate, "StartDate", "StartDate", "pastdate", "")
			}
		}
	}

	if d.EndDate != "" {
		t, err := time.Parse(DateLayout, d.EndDate)
		if err != nil {
			sl.ReportError(d.EndDate, "EndDate", "EndDate", "dateformat", "")
		} else {
			end, endOK = t, true
			if t.Before(today) {
				sl.ReportError(d.EndDate, "EndDate", "EndDate", "pastdate", "")
			}
		}
	}

	if startOK && endOK && end.Before(start) {
		sl.ReportError(d.EndDate, "EndDate", "EndDate", "endbeforestart", "")
	}
}

// draftMessage maps a validation failure to its form field and message
func draftMessage(ve validator.FieldError) (string, string) {
	switch ve.StructField() {
	case "Name":
		switch ve.Tag() {
		case "required":
			return FieldName, "Name is required."
		case "max":
			return FieldName, "Name cannot exceed 30 characters."
		}
	case "Description":
		switch ve.Tag() {
		case "required":
			return FieldDescription, "Description is required."
		case "max":
			return FieldDescription, "Description cannot exceed 50 characters."
		}
	case "StartDate":
		switch ve.Tag() {
		case "required":
			return FieldStartDate, "Start Date is required."
		case "dateformat":
			return FieldStartDate, "Start Date must be in YYYY-MM-DD format."
		case "pastdate":
			return FieldStartDate, "Start Date cannot be in the past."
		}
	case "EndDate":
		switch ve.Tag() {
		case "required":
			return FieldEndDate, "End Date is required."
		case "dateformat":
			return FieldEndDate, "End Date must be in YYYY-MM-DD format."
		case "pastdate":
			return FieldEndDate, "End Date cannot be in the past."
		case "endbeforestart":
			return FieldEndDate, "End Date cannot be before Start Date."
		}
	case "Status":
		switch ve.Tag() {
		case "required":
			return FieldStatus, "Status is required."
		case "catalogstatus":
			return FieldStatus, "Invalid status. Allowed: " + strings.Join(AllowedStatuses(), ", ") + "."
		}
	}
	return "", ""
}

// MapDetailToField maps a server-side validation message to the form
// field it concerns by substring match, first match wins in form field
// order. Returns "" when no field name appears in the message.
func MapDetailToField(detail string) string {
	for _, field := range FieldOrder {
		if strings.Contains(detail, FieldLabel(field)) {
			return field
		}
	}
	return ""
}
