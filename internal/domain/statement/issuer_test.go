package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		text string
		want Issuer
	}{
		{"hdfc", "HDFC Bank Credit Card Statement", IssuerHDFC},
		{"icici", "ICICI Bank Monthly Statement", IssuerICICI},
		{"idfc", "IDFC FIRST Bank", IssuerIDFC},
		{"citi", "Citi Card Services", IssuerCITI},
		{"citi accented brand mark", "Experience cíti banking", IssuerCITI},
		{"sbi card domain", "visit sbicard.com for details", IssuerSBI},
		{"sbi with card", "SBI Card Monthly Statement", IssuerSBI},
		{"sbi without context", "SBI rewards points update", IssuerUnknown},
		{"axis with bank", "AXIS BANK statement of account", IssuerAXIS},
		{"axis without context", "rotate around the axis slowly", IssuerUnknown},
		{"lowercase", "hdfc bank netbanking", IssuerHDFC},
		{"empty", "", IssuerUnknown},
		{"no issuer", "monthly grocery list and notes", IssuerUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

// A statement mentioning a second issuer in payment instructions must still
// classify by signature order, not token position.
func TestClassifyOrderResolvesMultipleMentions(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, IssuerHDFC, c.Classify("Pay via ICICI netbanking to HDFC Bank"))
	assert.Equal(t, IssuerICICI, c.Classify("ICICI Bank accepts SBI Card payments"))
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier()
	text := "AXIS BANK Credit Card\nStatement Period 01/02/2024 - 29/02/2024"

	first := c.Classify(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
	assert.Equal(t, IssuerAXIS, first)
}
