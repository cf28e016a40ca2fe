// Package pricing содержит функции вычисления суммы корзины из строковых цен.
package pricing

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Russian)

// CleanDigits удаляет из строки все символы, кроме десятичных цифр 0-9.
func CleanDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Parse извлекает из строковой цены целое число.
// Пустая строка и строка без цифр дают ноль. Повторный разбор уже очищенной
// строки даёт тот же результат: Parse(s) == Parse(CleanDigits(s)).
func Parse(s string) int64 {
	digits := CleanDigits(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Total возвращает сумму разобранных цен.
func Total(prices []string) int64 {
	var total int64
	for _, p := range prices {
		total += Parse(p)
	}
	return total
}

// Format форматирует сумму с разделителями групп разрядов по правилам
// русской локали.
func Format(n int64) string {
	return printer.Sprintf("%d", n)
}
