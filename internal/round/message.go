package round

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/luckpix/raspadinha/internal/domain"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders centavos as a BRL amount for player-facing text.
func FormatAmount(centavos int64) string {
	return printer.Sprintf("R$ %.2f", float64(centavos)/100)
}

// formatMessage creates a user-facing message for the round result
func formatMessage(result *domain.RoundResult, priceCentavos int64) string {
	if result.Outcome == domain.OutcomeLoss {
		return printer.Sprintf("Não foi dessa vez! Você perdeu %s.", FormatAmount(priceCentavos))
	}
	if result.Prize.ValueCentavos == 0 {
		return printer.Sprintf("Você ganhou: %s!", result.Prize.Name)
	}
	return printer.Sprintf("Parabéns! Você ganhou %s (%s)!",
		FormatAmount(result.Prize.ValueCentavos), result.Prize.Name)
}
