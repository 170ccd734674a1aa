package statement

// ErrIssuerUndetermined is the error marker carried by a minimal result when
// classification fails. It is a value on the result, not a Go error: an
// undetermined issuer is a defined terminal state of the engine.
const ErrIssuerUndetermined = "could not determine the card issuer"

// Amount is a normalized monetary value: a fixed two-decimal display string
// plus the signed numeric value.
type Amount struct {
	Formatted string  `json:"formatted"`
	Value     float64 `json:"value"`
}

// FieldValue is the outcome of resolving one field. Found is definite: a
// field is either found or not, never silently omitted. Exactly one of Text,
// Date, or Amount is populated on success, matching the field's kind; Raw is
// retained even when normalization fails so callers can diagnose.
type FieldValue struct {
	Raw    string  `json:"raw,omitempty"`
	Found  bool    `json:"found"`
	Text   string  `json:"text,omitempty"`
	Date   string  `json:"date,omitempty"`
	Amount *Amount `json:"amount,omitempty"`
	Valid  bool    `json:"valid"`
}

// ParsedStatement is the result of one extraction. It is constructed once
// and never mutated; OK is false only when issuer classification failed, in
// which case Fields is empty and Error carries the marker.
type ParsedStatement struct {
	Issuer Issuer               `json:"issuer"`
	Fields map[Field]FieldValue `json:"fields,omitempty"`
	OK     bool                 `json:"ok"`
	Error  string               `json:"error,omitempty"`
}

// Field returns the value for a field; the zero FieldValue when absent.
func (s ParsedStatement) Field(f Field) FieldValue {
	return s.Fields[f]
}

// Engine classifies a statement text and resolves every supported field.
// It is pure and stateless per invocation: concurrent extractions over
// independent documents need no locking.
type Engine struct {
	classifier *Classifier
	resolver   *Resolver
}

// NewEngine builds an engine over the default registry.
func NewEngine() *Engine {
	return NewEngineWithRegistry(DefaultRegistry())
}

// NewEngineWithRegistry builds an engine over a custom registry; the
// registry must not be mutated after this call.
func NewEngineWithRegistry(registry Registry) *Engine {
	return &Engine{
		classifier: NewClassifier(),
		resolver:   NewResolver(registry),
	}
}

// Extract runs issuer classification once, then the field resolver for every
// field. An undetermined issuer short-circuits to a minimal result: no field
// resolution is attempted against an empty pattern set.
func (e *Engine) Extract(text string) ParsedStatement {
	issuer := e.classifier.Classify(text)
	if issuer == IssuerUnknown {
		return ParsedStatement{
			Issuer: IssuerUnknown,
			Error:  ErrIssuerUndetermined,
		}
	}

	fields := make(map[Field]FieldValue, len(Fields))
	for _, f := range Fields {
		fields[f] = e.resolver.Resolve(issuer, f, text)
	}

	return ParsedStatement{
		Issuer: issuer,
		Fields: fields,
		OK:     true,
	}
}

// Record flattens a ParsedStatement into the downstream output contract.
// Normalized values only; a field that failed normalization surfaces empty
// here and keeps its raw form on the FieldValue.
type Record struct {
	SourceFile     string `json:"source_file,omitempty" csv:"source_file"`
	Issuer         string `json:"issuer" csv:"issuer"`
	CardholderName string `json:"cardholder_name,omitempty" csv:"cardholder_name"`
	CardLast4      string `json:"card_last_4,omitempty" csv:"card_last_4"`
	StatementDate  string `json:"statement_date,omitempty" csv:"statement_date"`
	PaymentDueDate string `json:"payment_due_date,omitempty" csv:"payment_due_date"`

	TotalBalance *Amount `json:"total_balance,omitempty" csv:"-"`
	MinimumDue   *Amount `json:"minimum_amount_due,omitempty" csv:"-"`

	// CSV projections of the amount pair.
	TotalBalanceFormatted string `json:"-" csv:"total_balance"`
	MinimumDueFormatted   string `json:"-" csv:"minimum_amount_due"`

	Error string `json:"error,omitempty" csv:"error"`
}

// Record builds the flattened output record.
func (s ParsedStatement) Record() Record {
	rec := Record{
		Issuer: string(s.Issuer),
		Error:  s.Error,
	}
	if !s.OK {
		return rec
	}

	rec.CardholderName = s.Field(FieldCardholderName).Text
	rec.CardLast4 = s.Field(FieldCardLast4).Text
	rec.StatementDate = s.Field(FieldStatementDate).Date
	rec.PaymentDueDate = s.Field(FieldPaymentDueDate).Date

	if a := s.Field(FieldTotalBalance).Amount; a != nil {
		rec.TotalBalance = a
		rec.TotalBalanceFormatted = a.Formatted
	}
	if a := s.Field(FieldMinimumDue).Amount; a != nil {
		rec.MinimumDue = a
		rec.MinimumDueFormatted = a.Formatted
	}
	return rec
}
