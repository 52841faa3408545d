package order

import (
	"fmt"

	"cakery/internal/pkg/errs"
)

// updatableFields is the explicit allow-list of column-shaped keys a partial
// update may touch. Anything else is rejected.
var updatableFields = map[string]struct{}{
	"recipient_name":   {},
	"phone":            {},
	"address":          {},
	"cake_description": {},
	"delivery_fee":     {},
	"delivery_date":    {},
	"delivery_time":    {},
	"collection_time":  {},
	"notes":            {},
	"status":           {},
}

// UpdateDocument is a validated partial-update document: a non-empty mapping
// from allowed field names to new values. The "id" key is stripped before
// validation because the path parameter is authoritative.
type UpdateDocument struct {
	fields map[string]any
}

// NewUpdateDocument validates a raw field mapping into an UpdateDocument.
//
// Rules:
//   - "id" is removed and ignored
//   - the remaining set must be non-empty
//   - every key must be in the allow-list of mutable order fields
//   - a "status" value must be one of the four enumerated statuses
func NewUpdateDocument(raw map[string]any) (UpdateDocument, error) {
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		if key == "id" {
			continue
		}
		fields[key] = value
	}

	if len(fields) == 0 {
		return UpdateDocument{}, errs.NewValueIsInvalidError("no fields to update")
	}

	for key := range fields {
		if _, ok := updatableFields[key]; !ok {
			return UpdateDocument{}, errs.NewValueIsInvalidErrorWithCause(key,
				fmt.Errorf("%q is not an updatable order field", key))
		}
	}

	if rawStatus, ok := fields["status"]; ok {
		str, isString := rawStatus.(string)
		if !isString {
			return UpdateDocument{}, errs.NewValueIsInvalidError("status")
		}
		status, err := ParseStatus(str)
		if err != nil {
			return UpdateDocument{}, err
		}
		fields["status"] = string(status)
	}

	return UpdateDocument{fields: fields}, nil
}

// Fields returns a copy of the validated field mapping.
func (d UpdateDocument) Fields() map[string]any {
	out := make(map[string]any, len(d.fields))
	for k, v := range d.fields {
		out[k] = v
	}
	return out
}

// IsZero reports whether the document was not built via NewUpdateDocument.
func (d UpdateDocument) IsZero() bool {
	return d.fields == nil
}
