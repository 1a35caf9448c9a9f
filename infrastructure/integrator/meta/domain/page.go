package metadomain

import (
	jsoniter "github.com/json-iterator/go"
)

// Os campos escalares usam any: o payload do Graph é tratado como não confiável
// e convertido campo a campo, descartando valores com tipo inesperado.

// Page é a resposta de /{page-id}
type Page struct {
	ID             any          `json:"id"`
	Name           any          `json:"name"`
	About          any          `json:"about"`
	Category       any          `json:"category"`
	Website        any          `json:"website"`
	Phone          any          `json:"phone"`
	FanCount       any          `json:"fan_count"`
	FollowersCount any          `json:"followers_count"`
	Picture        *PictureData `json:"picture,omitempty"`
}

type PictureData struct {
	Data struct {
		URL any `json:"url"`
	} `json:"data"`
}

// Paging é o bloco de paginação por cursor
type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
}

// ListResponse é o envelope das listas do Graph. Cada item é decodificado individualmente.
type ListResponse struct {
	Data   []jsoniter.RawMessage `json:"data"`
	Paging *Paging               `json:"paging,omitempty"`
}
