package repository

import "mortgage-calc/domain"

// HistoryRepository records the summaries produced during a session.
type HistoryRepository interface {
	Save(input domain.MortgageInput, summary domain.Summary) error
}
