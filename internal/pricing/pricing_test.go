package pricing

import "testing"

func TestCleanDigits(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{
			name:  "formatted price with currency",
			price: "12 990 ₽",
			want:  "12990",
		},
		{
			name:  "plain number",
			price: "1000",
			want:  "1000",
		},
		{
			name:  "no digits",
			price: "цена по запросу",
			want:  "",
		},
		{
			name:  "empty string",
			price: "",
			want:  "",
		},
		{
			name:  "digits between letters",
			price: "от 1 до 5",
			want:  "15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanDigits(tt.price)
			if got != tt.want {
				t.Fatalf("CleanDigits(%q) = %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  int64
	}{
		{
			name:  "formatted price with currency",
			price: "12 990 ₽",
			want:  12990,
		},
		{
			name:  "price with dots",
			price: "1.000.000",
			want:  1000000,
		},
		{
			name:  "empty string",
			price: "",
			want:  0,
		},
		{
			name:  "no digits",
			price: "бесплатно",
			want:  0,
		},
		{
			name:  "too large to fit int64",
			price: "99999999999999999999",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.price)
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.price, got, tt.want)
			}
		})
	}
}

// Разбор уже очищенной строки обязан давать тот же результат, что и разбор исходной.
func TestParseIdempotent(t *testing.T) {
	prices := []string{
		"12 990 ₽",
		"1 000 ₽",
		"0 ₽",
		"",
		"со скидкой: 2 499 ₽!",
		"9999",
	}

	for _, p := range prices {
		if Parse(p) != Parse(CleanDigits(p)) {
			t.Fatalf("Parse(%q) = %d, Parse(CleanDigits(%q)) = %d", p, Parse(p), p, Parse(CleanDigits(p)))
		}
	}
}

func TestTotal(t *testing.T) {
	prices := []string{"1 000 ₽", "12 990 ₽", "", "мусор"}

	got := Total(prices)
	if got != 13990 {
		t.Fatalf("Total = %d, want 13990", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{
			name: "zero",
			n:    0,
			want: "0",
		},
		{
			name: "no separator needed",
			n:    999,
			want: "999",
		},
		{
			name: "thousands",
			n:    1000,
			want: "1\u00a0000",
		},
		{
			name: "five digits",
			n:    12990,
			want: "12\u00a0990",
		},
		{
			name: "millions",
			n:    1234567,
			want: "1\u00a0234\u00a0567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.n)
			if got != tt.want {
				t.Fatalf("Format(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
