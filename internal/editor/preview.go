package editor

import "esign-editor-api/internal/domain"

// Summary is the read-only pre-flight aggregation shown before sending a
// document for signing
type Summary struct {
	TotalFields          int                      `json:"total_fields"`
	ConfiguredCount      int                      `json:"configured_count"`
	RequiredUnconfigured int                      `json:"required_unconfigured"`
	ByType               map[domain.FieldType]int `json:"by_type"`
	ByPage               map[int]int              `json:"by_page"`
	Fields               []Field                  `json:"fields"`
}

// BuildSummary aggregates the full field list of a store
func BuildSummary(store *Store) Summary {
	fields := store.ListAll()
	summary := Summary{
		TotalFields: len(fields),
		ByType:      make(map[domain.FieldType]int),
		ByPage:      make(map[int]int),
		Fields:      fields,
	}
	for _, f := range fields {
		summary.ByType[f.Type]++
		summary.ByPage[f.Page]++
		if f.IsConfigured {
			summary.ConfiguredCount++
		} else if f.Required {
			summary.RequiredUnconfigured++
		}
	}
	return summary
}

// GateSend checks the pre-flight conditions for sending. The default gate
// only requires at least one placed field, matching the editor's shipped
// behavior; the strict gate additionally requires every required field to
// be configured and is enabled by configuration.
func GateSend(store *Store, strict bool) error {
	if store.Len() == 0 {
		return ErrNoFields
	}
	if strict {
		summary := BuildSummary(store)
		if summary.RequiredUnconfigured > 0 {
			return ErrRequiredUnconfigured
		}
	}
	return nil
}
