package dashboard

import "errors"

var (
	ErrSelectionLimit      = errors.New("limite de municípios selecionados atingido")
	ErrUnknownMunicipality = errors.New("município desconhecido")
	ErrUnknownIndicator    = errors.New("indicador desconhecido")
	ErrInvalidView         = errors.New("visão inválida (use: map, compare)")
)

// LimitNotice é o aviso exibido ao usuário quando a seleção está cheia
const LimitNotice = "Máximo 4 municipios pueden ser seleccionados"
