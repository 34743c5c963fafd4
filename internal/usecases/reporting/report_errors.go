package reporting

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEndBeforeStart indica intervalo com fim anterior ao início
	ErrEndBeforeStart = errors.New("a data final do intervalo é anterior à inicial")

	// ErrBeyondHistoryWindow indica intervalo fora da janela histórica
	// retida pela API
	ErrBeyondHistoryWindow = errors.New("o intervalo ultrapassa a janela histórica disponível")

	// ErrWithinFreshnessLag indica intervalo que inclui dias ainda sem
	// dados consolidados
	ErrWithinFreshnessLag = errors.New("o intervalo inclui dias ainda não consolidados")

	// ErrInvalidReportLevel indica nível de relatório desconhecido
	ErrInvalidReportLevel = errors.New("nível de relatório inválido")

	// ErrMissingSite indica requisição sem site informado
	ErrMissingSite = errors.New("é necessário informar o site do relatório")
)

// RangeError agrega o motivo da rejeição ao intervalo solicitado
type RangeError struct {
	Err       error
	StartDate time.Time
	EndDate   time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("intervalo %s a %s rejeitado: %v",
		e.StartDate.Format(time.DateOnly), e.EndDate.Format(time.DateOnly), e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
