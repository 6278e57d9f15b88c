package domain

import "time"

// FilterSelection representa os filtros ativos de uma interação com o painel.
// Dimensão vazia significa nenhuma restrição naquela dimensão.
type FilterSelection struct {
	Stores      []string
	ClientTypes []string
	StartDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty indica se nenhuma dimensão está restringida
func (f *FilterSelection) IsEmpty() bool {
	if f == nil {
		return true
	}
	return len(f.StoreConstraint()) == 0 &&
		len(f.ClientTypes) == 0 &&
		f.StartDate == nil &&
		f.EndDate == nil
}

// StoreConstraint retorna as lojas que de fato restringem a seleção.
// A presença do pseudo-valor "Empresa" desativa o filtro de lojas.
func (f *FilterSelection) StoreConstraint() []string {
	if f == nil || len(f.Stores) == 0 {
		return nil
	}
	for _, store := range f.Stores {
		if store == CompanyWide {
			return nil
		}
	}
	return f.Stores
}

// SingleStore retorna a loja selecionada quando exatamente uma loja real
// está ativa no filtro
func (f *FilterSelection) SingleStore() (string, bool) {
	constraint := f.StoreConstraint()
	if len(constraint) == 1 {
		return constraint[0], true
	}
	return "", false
}

// FilterOptions descreve os valores disponíveis para os componentes de filtro
type FilterOptions struct {
	Stores      []string   `json:"stores"`
	ClientTypes []string   `json:"client_types"`
	MinDate     *time.Time `json:"min_date,omitempty"`
	MaxDate     *time.Time `json:"max_date,omitempty"`
}
