package statement

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iciciFixture = `ICICI Bank Credit Card Statement
Customer Name: MR JOHN SMITH
Card Account No : XXXX XXXX XXXX 1234
Statement Date: 05/06/2024
Payment Due Date: 25/06/2024
Your Total Amount Due ₹ 12,500.00
Minimum Amount Due: 625.00
`

const hdfcFixture = `HDFC Bank Credit Card Statement
Name: RAHUL SHARMA
Card No: 4532 XXXX XXXX 7890
Statement Date: 15/05/2024
Payment Due Date
04/06/2024
Total Dues
Rs. 45,320.50
Minimum Amount Due
Rs. 2,266.00
`

func TestExtractICICI(t *testing.T) {
	res := NewEngine().Extract(iciciFixture)

	require.True(t, res.OK)
	assert.Equal(t, IssuerICICI, res.Issuer)
	assert.Empty(t, res.Error)

	assert.Equal(t, "John Smith", res.Field(FieldCardholderName).Text)
	assert.Equal(t, "1234", res.Field(FieldCardLast4).Text)
	assert.Equal(t, "2024-06-05", res.Field(FieldStatementDate).Date)
	assert.Equal(t, "2024-06-25", res.Field(FieldPaymentDueDate).Date)

	total := res.Field(FieldTotalBalance)
	require.NotNil(t, total.Amount)
	assert.Equal(t, "12500.00", total.Amount.Formatted)
	assert.InDelta(t, 12500.00, total.Amount.Value, 0.001)

	minDue := res.Field(FieldMinimumDue)
	require.NotNil(t, minDue.Amount)
	assert.Equal(t, "625.00", minDue.Amount.Formatted)
}

func TestExtractHDFC(t *testing.T) {
	res := NewEngine().Extract(hdfcFixture)

	require.True(t, res.OK)
	assert.Equal(t, IssuerHDFC, res.Issuer)

	assert.Equal(t, "Rahul Sharma", res.Field(FieldCardholderName).Text)
	assert.Equal(t, "7890", res.Field(FieldCardLast4).Text)
	assert.Equal(t, "2024-05-15", res.Field(FieldStatementDate).Date)
	assert.Equal(t, "2024-06-04", res.Field(FieldPaymentDueDate).Date)

	total := res.Field(FieldTotalBalance)
	require.NotNil(t, total.Amount)
	assert.Equal(t, "45320.50", total.Amount.Formatted)

	minDue := res.Field(FieldMinimumDue)
	require.NotNil(t, minDue.Amount)
	assert.Equal(t, "2266.00", minDue.Amount.Formatted)
}

func TestExtractIDFC(t *testing.T) {
	text := `IDFC FIRST Bank
01/02/2024 - 29/02/2024
Ravi Teja Reddy
Card Number: XXXX 4821
Payment Due Date
15/03/2024
Total Amount Due
12,345.67
Minimum Amount Due
1,234.56
`
	res := NewEngine().Extract(text)

	require.True(t, res.OK)
	assert.Equal(t, IssuerIDFC, res.Issuer)
	assert.Equal(t, "Ravi Teja Reddy", res.Field(FieldCardholderName).Text)
	assert.Equal(t, "4821", res.Field(FieldCardLast4).Text)
	// No labeled statement date; the billing-period end stands in.
	assert.Equal(t, "2024-02-29", res.Field(FieldStatementDate).Date)
	assert.Equal(t, "2024-03-15", res.Field(FieldPaymentDueDate).Date)
	require.NotNil(t, res.Field(FieldTotalBalance).Amount)
	assert.Equal(t, "12345.67", res.Field(FieldTotalBalance).Amount.Formatted)
	require.NotNil(t, res.Field(FieldMinimumDue).Amount)
	assert.Equal(t, "1234.56", res.Field(FieldMinimumDue).Amount.Formatted)
}

func TestExtractSBI(t *testing.T) {
	text := `SBI Card ELITE Statement
Name: MR AMIT KUMAR
Credit Card Number: XXXX XXXX XXXX 5566
Statement Date: 03 Jan 2024
Payment Due Date: 23 Jan 2024
Total Amount Due (₹): 18,750.25
Minimum Amount Due (₹): 937.51
`
	res := NewEngine().Extract(text)

	require.True(t, res.OK)
	assert.Equal(t, IssuerSBI, res.Issuer)
	assert.Equal(t, "Amit Kumar", res.Field(FieldCardholderName).Text)
	assert.Equal(t, "5566", res.Field(FieldCardLast4).Text)
	assert.Equal(t, "2024-01-03", res.Field(FieldStatementDate).Date)
	assert.Equal(t, "2024-01-23", res.Field(FieldPaymentDueDate).Date)
	require.NotNil(t, res.Field(FieldTotalBalance).Amount)
	assert.Equal(t, "18750.25", res.Field(FieldTotalBalance).Amount.Formatted)
}

func TestExtractCITI(t *testing.T) {
	text := `Citi Bank Credit Card Statement
Ms. CLARA FERNANDES
Card Number : 1234-5678-9012-3456
Statement Date : 15/01/2024
Payment Due Date : 04/02/2024
Total Amount Due (P) : 7,845.00
Minimum Amount Due (P) : 392.25
`
	res := NewEngine().Extract(text)

	require.True(t, res.OK)
	assert.Equal(t, IssuerCITI, res.Issuer)
	assert.Equal(t, "Clara Fernandes", res.Field(FieldCardholderName).Text)
	assert.Equal(t, "3456", res.Field(FieldCardLast4).Text)
	assert.Equal(t, "2024-01-15", res.Field(FieldStatementDate).Date)
	assert.Equal(t, "2024-02-04", res.Field(FieldPaymentDueDate).Date)
	require.NotNil(t, res.Field(FieldTotalBalance).Amount)
	assert.Equal(t, "7845.00", res.Field(FieldTotalBalance).Amount.Formatted)
}

func TestExtractUnknownIssuerShortCircuits(t *testing.T) {
	res := NewEngine().Extract("just a grocery list\nmilk\neggs\n")

	assert.False(t, res.OK)
	assert.Equal(t, IssuerUnknown, res.Issuer)
	assert.Equal(t, ErrIssuerUndetermined, res.Error)
	assert.Empty(t, res.Fields)
}

func TestExtractEmptyText(t *testing.T) {
	res := NewEngine().Extract("")

	assert.False(t, res.OK)
	assert.Equal(t, IssuerUnknown, res.Issuer)
	assert.Equal(t, ErrIssuerUndetermined, res.Error)
}

// Extraction over the same text is deterministic and side-effect free.
func TestExtractIdempotent(t *testing.T) {
	e := NewEngine()

	first := e.Extract(iciciFixture)
	second := e.Extract(iciciFixture)
	assert.Equal(t, first, second)
}

// Every supported field appears in the result with a definite Found flag,
// even when nothing resolved it.
func TestExtractAlwaysReportsEveryField(t *testing.T) {
	res := NewEngine().Extract("HDFC Bank\nnothing else useful here\n")

	require.True(t, res.OK)
	assert.Len(t, res.Fields, len(Fields))
	for _, f := range Fields {
		fv, ok := res.Fields[f]
		assert.True(t, ok, "field %s missing from result", f)
		assert.False(t, fv.Found)
	}
}

// Surrounding noise must not divert extraction when the labeled fields are
// intact.
func TestExtractSurvivesSurroundingNoise(t *testing.T) {
	gofakeit.Seed(11)
	noise := gofakeit.LoremIpsumParagraph(2, 4, 8, "\n")

	res := NewEngine().Extract(noise + "\n" + hdfcFixture + "\n" + noise)

	require.True(t, res.OK)
	assert.Equal(t, IssuerHDFC, res.Issuer)
	assert.Equal(t, "Rahul Sharma", res.Field(FieldCardholderName).Text)
	assert.Equal(t, "7890", res.Field(FieldCardLast4).Text)
	assert.Equal(t, "2024-05-15", res.Field(FieldStatementDate).Date)
	require.NotNil(t, res.Field(FieldTotalBalance).Amount)
	assert.Equal(t, "45320.50", res.Field(FieldTotalBalance).Amount.Formatted)
}

func TestRecordFlattening(t *testing.T) {
	res := NewEngine().Extract(iciciFixture)
	rec := res.Record()

	assert.Equal(t, "ICICI", rec.Issuer)
	assert.Equal(t, "John Smith", rec.CardholderName)
	assert.Equal(t, "1234", rec.CardLast4)
	assert.Equal(t, "2024-06-05", rec.StatementDate)
	assert.Equal(t, "2024-06-25", rec.PaymentDueDate)
	require.NotNil(t, rec.TotalBalance)
	assert.Equal(t, "12500.00", rec.TotalBalanceFormatted)
	assert.Equal(t, "625.00", rec.MinimumDueFormatted)
	assert.Empty(t, rec.Error)
}

func TestRecordForUndeterminedIssuer(t *testing.T) {
	rec := NewEngine().Extract("nothing recognizable").Record()

	assert.Equal(t, "UNKNOWN", rec.Issuer)
	assert.Equal(t, ErrIssuerUndetermined, rec.Error)
	assert.Empty(t, rec.CardholderName)
	assert.Nil(t, rec.TotalBalance)
}

// The largest-amount heuristic stays on the first page: a bigger figure on a
// later page never becomes the total balance guess.
func TestExtractPageBreakScoping(t *testing.T) {
	text := "HDFC Bank\ncharges 1,500.00\n" + PageBreak + "\nrewards catalogue 99,999.00\n"
	res := NewEngine().Extract(text)

	require.True(t, res.OK)
	total := res.Field(FieldTotalBalance)
	require.NotNil(t, total.Amount)
	assert.Equal(t, "1500.00", total.Amount.Formatted)
	assert.False(t, strings.Contains(total.Raw, "99,999.00"))
}
