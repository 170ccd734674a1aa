package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"honorific stripped and title cased", "MR JOHN SMITH", "John Smith"},
		{"mrs with dot", "Mrs. JANE DOE", "Jane Doe"},
		{"whitespace collapsed", "  RAHUL   SHARMA \n", "Rahul Sharma"},
		{"email label cut", "PRIYA PATEL Email: priya.patel@icicibank.com", "Priya Patel"},
		{"bare email token stripped", "ANITA DESAI anita@axisbank.com", "Anita Desai"},
		{"trailing punctuation trimmed", "Ms. ANITA DESAI.", "Anita Desai"},
		{"only email yields empty", "john.smith@mail.com", ""},
		{"empty", "", ""},
		{"already clean", "Ravi Teja Reddy", "Ravi Teja Reddy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.raw))
		})
	}
}
