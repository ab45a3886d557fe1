package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundWithTwoDecimalPlace arredonda em base decimal para evitar erro de ponto flutuante
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Percentage calcula actual/target*100 com duas casas; alvo zero ou negativo resulta em zero
func Percentage(actual, target float64) decimal.Decimal {
	if target <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromFloat(actual).
		Div(decimal.NewFromFloat(target)).
		Mul(hundred).
		Round(2)
}

// FormatPercentage devolve o percentual com duas casas fixas ("50.00%").
// Sem meta o texto é "0%".
func FormatPercentage(actual, target float64) string {
	if target <= 0 {
		return "0%"
	}
	return Percentage(actual, target).StringFixed(2) + "%"
}

// RoundedPercentage devolve o percentual arredondado para inteiro
func RoundedPercentage(actual, target float64) int {
	return int(Percentage(actual, target).Round(0).IntPart())
}
