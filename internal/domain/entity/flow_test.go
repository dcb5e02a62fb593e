package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowState_Reset(t *testing.T) {
	state := NewFlowState()
	state.SetSelectedPackage(&InsurancePackage{ID: "flood-basic"})
	state.SetApplicationData(NewApplication(InsuranceTypeNaturalDisaster, nil))
	state.SetExtractedData(&ExtractedData{FullName: strPtr("A")})
	state.SetCurrentContract(&Contract{ID: "BH12345678"})
	state.SetCurrentStep(FlowStepPayment)

	state.Reset()

	assert.Nil(t, state.SelectedPackage)
	assert.Nil(t, state.ApplicationData)
	assert.Nil(t, state.ExtractedData)
	assert.Nil(t, state.CurrentContract)
	assert.Equal(t, FlowStepSelect, state.CurrentStep)
}

func TestFlowState_SnapshotRestore_DropsTransientFields(t *testing.T) {
	state := NewFlowState()
	state.SetSelectedPackage(&InsurancePackage{ID: "vehicle-basic", Type: InsuranceTypeVehicle})
	state.SetApplicationData(NewApplication(InsuranceTypeVehicle, nil))
	state.SetExtractedData(&ExtractedData{LicensePlate: strPtr("30A-12345")})
	state.SetCurrentContract(&Contract{ID: "BH00000001"})
	state.SetCurrentStep(FlowStepForm)

	restored := state.Snapshot().Restore()

	require.NotNil(t, restored.SelectedPackage)
	assert.Equal(t, "vehicle-basic", restored.SelectedPackage.ID)
	assert.NotNil(t, restored.ApplicationData)
	assert.Equal(t, FlowStepForm, restored.CurrentStep)
	assert.Nil(t, restored.ExtractedData)
	assert.Nil(t, restored.CurrentContract)
}

func TestPersistedFlow_Restore_InvalidStep(t *testing.T) {
	restored := (&PersistedFlow{CurrentStep: "checkout"}).Restore()
	assert.Equal(t, FlowStepSelect, restored.CurrentStep)

	var missing *PersistedFlow
	assert.Equal(t, FlowStepSelect, missing.Restore().CurrentStep)
}

func TestFlowStep_IsValid(t *testing.T) {
	for _, step := range []FlowStep{FlowStepSelect, FlowStepUpload, FlowStepForm, FlowStepPayment, FlowStepSuccess} {
		assert.True(t, step.IsValid(), step)
	}
	assert.False(t, FlowStep("done").IsValid())
}
