// Package statement implements issuer classification and field extraction
// for linearized credit-card statement text. The engine is pure: it reads a
// text blob produced by an external acquisition step and returns normalized
// fields without touching disk, network, or shared state.
package statement

// PageBreak is the reserved marker the acquisition collaborator inserts
// between pages of the linearized text.
const PageBreak = "\f"

// Field identifies one extractable statement field.
type Field string

const (
	FieldCardholderName Field = "cardholder_name"
	FieldCardLast4      Field = "card_last_4"
	FieldStatementDate  Field = "statement_date"
	FieldPaymentDueDate Field = "payment_due_date"
	FieldTotalBalance   Field = "total_balance"
	FieldMinimumDue     Field = "minimum_amount_due"
)

// Fields lists every field the engine resolves. Resolution of one field never
// depends on another, so the order here is cosmetic.
var Fields = []Field{
	FieldCardholderName,
	FieldCardLast4,
	FieldStatementDate,
	FieldPaymentDueDate,
	FieldTotalBalance,
	FieldMinimumDue,
}

// Kind selects the normalizer and the generic token extractor for a field.
type Kind int

const (
	KindName Kind = iota
	KindDigits
	KindDate
	KindAmount
)

// Kind returns the value kind of the field.
func (f Field) Kind() Kind {
	switch f {
	case FieldCardholderName:
		return KindName
	case FieldCardLast4:
		return KindDigits
	case FieldStatementDate, FieldPaymentDueDate:
		return KindDate
	default:
		return KindAmount
	}
}

// fieldKeywords anchors the keyword-window fallback. Matching is
// case-insensitive substring containment, with a fuzzy second pass for
// OCR-mangled labels.
var fieldKeywords = map[Field][]string{
	FieldCardholderName: {"customer name", "cardholder", "name"},
	FieldCardLast4:      {"card account no", "card number", "card no"},
	FieldStatementDate:  {"statement date", "statement period", "billing date"},
	FieldPaymentDueDate: {"payment due date", "due date"},
	FieldTotalBalance:   {"total amount due", "total dues", "total balance", "amount due"},
	FieldMinimumDue:     {"minimum amount due", "min amount due", "minimum due"},
}
