package dto

import (
	"ehotel/internal/domains/catalog/model"
	gModel "ehotel/shared/model"
	"ehotel/shared/timezone"
)

type CreateCommodityRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (c *CreateCommodityRequest) ToModel() model.Commodity {
	return model.Commodity{
		Name: c.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type CreateProblemRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateProblemRequest) ToModel() model.Problem {
	var description *string
	if c.Description != "" {
		description = &c.Description
	}

	return model.Problem{
		Name:        c.Name,
		Description: description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

type AttachCommodityRequest struct {
	CommodityName string `json:"commodity_name" validate:"required,max=100"`
}

type ReportProblemRequest struct {
	ProblemID int `json:"problem_id" validate:"required"`
}

type ProblemResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (r *ProblemResponse) FromModel(model model.Problem) {
	r.ID = model.ID
	r.Name = model.Name

	if model.Description != nil {
		r.Description = *model.Description
	}
}

type GetCommoditiesResponse struct {
	Commodities []string `json:"commodities"`
}

func (r *GetCommoditiesResponse) FromModels(models []model.Commodity) {
	r.Commodities = make([]string, len(models))
	for i, mod := range models {
		r.Commodities[i] = mod.Name
	}
}

type GetProblemsResponse struct {
	Problems []ProblemResponse `json:"problems"`
}

func (r *GetProblemsResponse) FromModels(models []model.Problem) {
	r.Problems = make([]ProblemResponse, len(models))
	for i, mod := range models {
		r.Problems[i].FromModel(mod)
	}
}

type GetRoomCommoditiesResponse struct {
	RoomID      int      `json:"room_id"`
	Commodities []string `json:"commodities"`
}

func (r *GetRoomCommoditiesResponse) FromModels(roomID int, models []model.RoomCommodity) {
	r.RoomID = roomID

	r.Commodities = make([]string, len(models))
	for i, mod := range models {
		r.Commodities[i] = mod.CommodityName
	}
}

type GetRoomProblemsResponse struct {
	RoomID     int   `json:"room_id"`
	ProblemIDs []int `json:"problem_ids"`
}

func (r *GetRoomProblemsResponse) FromModels(roomID int, models []model.RoomProblem) {
	r.RoomID = roomID

	r.ProblemIDs = make([]int, len(models))
	for i, mod := range models {
		r.ProblemIDs[i] = mod.ProblemID
	}
}
