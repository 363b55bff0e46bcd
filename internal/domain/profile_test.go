package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() ProfileClassification {
	return ProfileClassification{
		UserID:      "u-1",
		SkinType:    SkinOily,
		Sensitivity: SensitivityLow,
	}
}

func TestProfileValidate(t *testing.T) {
	p := validProfile()
	require.NoError(t, p.Validate())

	missing := validProfile()
	missing.UserID = ""
	assert.Error(t, missing.Validate())

	badSkin := validProfile()
	badSkin.SkinType = "combo"
	assert.Error(t, badSkin.Validate(), "raw survey values must be normalized upstream")

	badSens := validProfile()
	badSens.Sensitivity = "extreme"
	assert.Error(t, badSens.Validate())

	noRisk := validProfile()
	noRisk.RosaceaRisk = ""
	assert.NoError(t, noRisk.Validate(), "rosacea risk is optional")
}

func TestSensitivityAtLeast(t *testing.T) {
	assert.True(t, SensitivityHigh.AtLeast(SensitivityMedium))
	assert.True(t, SensitivityHigh.AtLeast(SensitivityHigh))
	assert.False(t, SensitivityLow.AtLeast(SensitivityMedium))
	assert.True(t, RosaceaRiskCritical.AtLeast(RosaceaRiskMedium))
	assert.False(t, RosaceaRiskLow.AtLeast(RosaceaRiskMedium))
}

func TestHasDiagnosisFold(t *testing.T) {
	p := validProfile()
	p.Diagnoses = []string{"Mild Rosacea (suspected)", "seborrheic dermatitis"}

	assert.True(t, p.HasDiagnosis("rosacea"))
	assert.True(t, p.HasDiagnosis("ROSACEA"))
	assert.True(t, p.HasDiagnosis("dermatitis"))
	assert.False(t, p.HasDiagnosis("eczema"))
}

func TestSuitsSkinType(t *testing.T) {
	untagged := CatalogProduct{ID: "p1"}
	assert.True(t, untagged.SuitsSkinType(SkinDry), "untagged products suit everyone")

	tagged := CatalogProduct{ID: "p2", SkinTypes: []SkinType{SkinOily, SkinCombinationOily}}
	assert.True(t, tagged.SuitsSkinType(SkinOily))
	assert.False(t, tagged.SuitsSkinType(SkinDry))
}
