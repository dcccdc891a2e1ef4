package model

import (
	"ehotel/shared/model"
)

const (
	CommodityTableName  = "commodities"
	CommodityEntityName = "commodity"

	ProblemTableName  = "problems"
	ProblemEntityName = "problem"

	RoomCommodityTableName  = "room_commodities"
	RoomCommodityEntityName = "room_commodity"

	RoomProblemTableName  = "room_problems"
	RoomProblemEntityName = "room_problem"

	FieldName          = "name"
	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldCommodityName = "commodity_name"
	FieldProblemID     = "problem_id"
)

// Commodity is keyed by its name; there is no surrogate id.
type Commodity struct {
	Name string `db:"name"`
	model.Metadata
}

type Problem struct {
	ID          int     `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	model.Metadata
}

type RoomCommodity struct {
	RoomID        int    `db:"room_id"`
	CommodityName string `db:"commodity_name"`
	model.Metadata
}

type RoomProblem struct {
	RoomID    int `db:"room_id"`
	ProblemID int `db:"problem_id"`
	model.Metadata
}
