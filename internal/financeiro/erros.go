package financeiro

import (
	"errors"
	"fmt"
)

// ErrEntradaInvalida marca dados de entrada malformados ou fora de
// intervalo. É devolvido imediatamente pelo cálculo chamado; nunca é usado
// para não-convergência de solver, que é sinalizada pelo campo Valida do
// resultado (um dashboard precisa continuar renderizando os demais imóveis).
var ErrEntradaInvalida = errors.New("entrada inválida")

func entradaInvalida(formato string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrEntradaInvalida, fmt.Sprintf(formato, args...))
}
