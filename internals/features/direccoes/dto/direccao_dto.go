// file: internals/features/direccoes/dto/direccao_dto.go
package dto

import model "sgescolar_backend/internals/features/direccoes/model"

type DireccaoRequest struct {
	DireccaoNome      string  `json:"direccao_nome" validate:"required,min=3,max=120"`
	DireccaoTipo      string  `json:"direccao_tipo" validate:"required,oneof=municipal provincial"`
	DireccaoProvincia string  `json:"direccao_provincia" validate:"required"`
	DireccaoMunicipio *string `json:"direccao_municipio"`
}

func (r *DireccaoRequest) ToModel() *model.DireccaoModel {
	return &model.DireccaoModel{
		DireccaoNome:      r.DireccaoNome,
		DireccaoTipo:      model.DireccaoTipo(r.DireccaoTipo),
		DireccaoProvincia: r.DireccaoProvincia,
		DireccaoMunicipio: r.DireccaoMunicipio,
	}
}
