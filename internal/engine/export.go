package engine

import (
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/naming"
)

// RejectedName is a campaign name that failed validation during export.
type RejectedName struct {
	Name   string   `json:"name"`
	Errors []string `json:"errors"`
}

// ExportResult holds the names ready for bulk upload and those that were refused.
type ExportResult struct {
	Warnings map[string][]string `json:"warnings,omitempty"`
	Names    []string            `json:"names"`
	Rejected []RejectedName      `json:"rejected,omitempty"`
}

// ExportNames validates each set of components and generates the names of
// those that pass. Failing names are reported with their errors, never dropped.
func (e *Engine) ExportNames(components []model.NamingComponents) ExportResult {
	result := ExportResult{
		Names:    []string{},
		Warnings: map[string][]string{},
	}

	for _, c := range components {
		name := naming.Generate(c)
		check := e.validator.ValidateComponents(c)

		if !check.IsValid {
			result.Rejected = append(result.Rejected, RejectedName{Name: name, Errors: check.Errors})
			continue
		}

		result.Names = append(result.Names, name)
		if len(check.Warnings) > 0 {
			result.Warnings[name] = check.Warnings
			e.logger.Warn("Campaign name exported with warnings", "name", name, "warnings", check.Warnings)
		}
	}

	e.logger.Info("Exported campaign names", "valid", len(result.Names), "rejected", len(result.Rejected))

	return result
}
