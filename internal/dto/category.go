package dto

import "github.com/SscSPs/unit_converter_app/internal/core/domain"

// UnitResponse defines one selectable unit option.
type UnitResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// CategoryResponse defines the data the page needs to render a converter.
type CategoryResponse struct {
	Category    string         `json:"category"`
	Title       string         `json:"title"`
	Units       []UnitResponse `json:"units"`
	DefaultFrom string         `json:"defaultFrom"`
	DefaultTo   string         `json:"defaultTo"`
	Refresh     string         `json:"refresh,omitempty"`
}

// ToCategoryResponse converts a domain.CategoryInfo to CategoryResponse DTO
func ToCategoryResponse(info domain.CategoryInfo) CategoryResponse {
	units := info.Units()
	resp := CategoryResponse{
		Category:    info.Category.String(),
		Title:       info.Title,
		Units:       make([]UnitResponse, len(units)),
		DefaultFrom: info.DefaultFrom().Code,
		DefaultTo:   info.DefaultTo().Code,
	}
	for i, u := range units {
		resp.Units[i] = UnitResponse{Code: u.Code, Name: u.Name, Symbol: u.Symbol}
	}
	return resp
}

// ToListCategoryResponse converts a slice of domain.CategoryInfo to CategoryResponse DTOs.
func ToListCategoryResponse(infos []domain.CategoryInfo) []CategoryResponse {
	responses := make([]CategoryResponse, len(infos))
	for i, info := range infos {
		responses[i] = ToCategoryResponse(info)
	}
	return responses
}

// ToCategoryActivationResponse converts a domain.CategoryActivation to CategoryResponse DTO
func ToCategoryActivationResponse(a *domain.CategoryActivation) CategoryResponse {
	resp := ToCategoryResponse(a.Info)
	if a.Refresh != nil {
		resp.Refresh = string(*a.Refresh)
	}
	return resp
}
