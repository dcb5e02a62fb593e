package entity

import "slices"

// DocumentKind is the classification of an uploaded document.
type DocumentKind string

const (
	DocumentKindIdentity DocumentKind = "identity"
	DocumentKindVehicle  DocumentKind = "vehicle"
)

// UploadedDocument is a document accepted by the remote backend.
type UploadedDocument struct {
	ID          string       `json:"id"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type"`
	Size        int64        `json:"size"`
	Kind        DocumentKind `json:"kind,omitempty"`
}

// ViewerState is the document viewer UI state of a session.
type ViewerState struct {
	ActiveTab string `json:"activeTab"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	Theme     string `json:"theme"`
}

// DocumentFlowState holds uploaded document ids and viewer state, independent of the purchase flow.
type DocumentFlowState struct {
	UploadedDocumentIDs []string    `json:"uploadedDocumentIds"`
	Viewer              ViewerState `json:"viewer"`
}

// NewDocumentFlowState returns a state at its initial values.
func NewDocumentFlowState() *DocumentFlowState {
	return &DocumentFlowState{
		UploadedDocumentIDs: []string{},
		Viewer: ViewerState{
			ActiveTab: "preview",
			Page:      1,
			PageSize:  10,
			Theme:     "light",
		},
	}
}

// AddDocument appends id unless it is already listed.
func (s *DocumentFlowState) AddDocument(id string) {
	if id == "" || slices.Contains(s.UploadedDocumentIDs, id) {
		return
	}
	s.UploadedDocumentIDs = append(s.UploadedDocumentIDs, id)
}

// ClearDocuments forgets every uploaded document id.
func (s *DocumentFlowState) ClearDocuments() {
	s.UploadedDocumentIDs = []string{}
}

// Recommendation is the natural-disaster offer derived from the first uploaded document.
type Recommendation struct {
	Show     bool                `json:"show"`
	Region   string              `json:"region,omitempty"`
	Reason   string              `json:"reason,omitempty"`
	Packages []*InsurancePackage `json:"packages"`
}
