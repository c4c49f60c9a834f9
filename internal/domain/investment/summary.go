package investment

// Summary é derivado da lista corrente a cada leitura, nunca cacheado.
type Summary struct {
	TotalAmount        float64           `json:"totalAmount"`
	TotalInvestments   int               `json:"totalInvestments"`
	DistributionByType map[Types]float64 `json:"distributionByType"`
}

// Summarize calcula o resumo agregado da lista. Tipos sem registros não
// aparecem na distribuição; para uma lista vazia a distribuição é um mapa
// vazio e os totais são zero.
func Summarize(investments []Investment) Summary {
	summary := Summary{
		TotalInvestments:   len(investments),
		DistributionByType: make(map[Types]float64),
	}

	for _, inv := range investments {
		summary.TotalAmount += inv.Amount
		summary.DistributionByType[inv.Type] += inv.Amount
	}

	return summary
}
