// Package entity contains the business objects of the purchase flow: packages,
// applications, extracted document data, contracts and purchase records.
package entity

// FlowStep is the coarse-grained stage cursor of the purchase journey.
type FlowStep string

const (
	FlowStepSelect  FlowStep = "select"
	FlowStepUpload  FlowStep = "upload"
	FlowStepForm    FlowStep = "form"
	FlowStepPayment FlowStep = "payment"
	FlowStepSuccess FlowStep = "success"
)

// String returns the string representation of the FlowStep.
func (s FlowStep) String() string {
	return string(s)
}

// IsValid checks if the FlowStep is a valid value.
func (s FlowStep) IsValid() bool {
	switch s {
	case FlowStepSelect, FlowStepUpload, FlowStepForm, FlowStepPayment, FlowStepSuccess:
		return true
	default:
		return false
	}
}

// FlowState is the state container of one purchase flow session.
// It performs no validation; transitions are enforced by the use cases that call the setters.
type FlowState struct {
	SelectedPackage *InsurancePackage `json:"selected_package"`
	ApplicationData *Application      `json:"application_data"`
	ExtractedData   *ExtractedData    `json:"extracted_data"`
	CurrentContract *Contract         `json:"current_contract"`
	CurrentStep     FlowStep          `json:"current_step"`
}

// NewFlowState returns a state at its initial values.
func NewFlowState() *FlowState {
	return &FlowState{CurrentStep: FlowStepSelect}
}

func (s *FlowState) SetSelectedPackage(pkg *InsurancePackage) { s.SelectedPackage = pkg }

func (s *FlowState) SetApplicationData(app *Application) { s.ApplicationData = app }

func (s *FlowState) SetExtractedData(data *ExtractedData) { s.ExtractedData = data }

func (s *FlowState) SetCurrentContract(contract *Contract) { s.CurrentContract = contract }

func (s *FlowState) SetCurrentStep(step FlowStep) { s.CurrentStep = step }

// Reset clears every field and returns the step to select.
func (s *FlowState) Reset() {
	*s = FlowState{CurrentStep: FlowStepSelect}
}

// Snapshot returns the persisted subset of the state.
func (s *FlowState) Snapshot() *PersistedFlow {
	return &PersistedFlow{
		SelectedPackage: s.SelectedPackage,
		ApplicationData: s.ApplicationData,
		CurrentStep:     s.CurrentStep,
	}
}

// PersistedFlow is the part of FlowState that survives a restart.
// Extracted data and the current contract are intentionally absent.
type PersistedFlow struct {
	SelectedPackage *InsurancePackage `json:"selectedPackage"`
	ApplicationData *Application      `json:"applicationData"`
	CurrentStep     FlowStep          `json:"currentStep"`
}

// Restore rebuilds a FlowState from its persisted subset.
func (p *PersistedFlow) Restore() *FlowState {
	state := NewFlowState()
	if p == nil {
		return state
	}

	state.SelectedPackage = p.SelectedPackage
	state.ApplicationData = p.ApplicationData
	if p.CurrentStep.IsValid() {
		state.CurrentStep = p.CurrentStep
	}

	return state
}
