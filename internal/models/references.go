package models

// ReferencesModel carries the services an entry mentions.
type ReferencesModel struct {
	Services []ServiceReference `json:"services"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Services: []ServiceReference{},
	}
}
