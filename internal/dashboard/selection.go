package dashboard

import "github.com/prefeitura-rio/app-painel-pr/internal/models"

// SelectionCapacity é o máximo de municípios comparados lado a lado
const SelectionCapacity = 4

// Selection é a lista ordenada de municípios escolhidos.
// Nunca passa de SelectionCapacity itens e nunca repete id; a ordem de
// inserção é a ordem de exibição.
type Selection struct {
	items []models.Municipality
}

// Toggle remove o município se já estiver selecionado; senão acrescenta no fim.
// Com a seleção cheia, nada muda e retorna ErrSelectionLimit.
func (s *Selection) Toggle(m models.Municipality) (added bool, err error) {
	if s.Remove(m.ID) {
		return false, nil
	}
	if len(s.items) >= SelectionCapacity {
		return false, ErrSelectionLimit
	}
	s.items = append(s.items, m)
	return true, nil
}

// Remove é idempotente; retorna true se algo foi removido
func (s *Selection) Remove(id string) bool {
	for i, m := range s.items {
		if m.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains verifica se o id está selecionado
func (s *Selection) Contains(id string) bool {
	for _, m := range s.items {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Clear esvazia a seleção; retorna false se já estava vazia
func (s *Selection) Clear() bool {
	if len(s.items) == 0 {
		return false
	}
	s.items = nil
	return true
}

func (s *Selection) Len() int {
	return len(s.items)
}

// Items retorna uma cópia dos itens, na ordem de inserção
func (s *Selection) Items() []models.Municipality {
	out := make([]models.Municipality, len(s.items))
	copy(out, s.items)
	return out
}
