package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice форматирует цену в долларах с разделителями разрядов: 450000 -> "$450,000"
func FormatPrice(value int64) string {
	if value < 0 {
		return pricePrinter.Sprintf("-$%d", -value)
	}
	return pricePrinter.Sprintf("$%d", value)
}

// FormatNumber: целое с разделителями разрядов
func FormatNumber(value int) string {
	return pricePrinter.Sprintf("%d", value)
}
