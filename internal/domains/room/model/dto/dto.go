package dto

import (
	"mime/multipart"
	"time"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID             string                `json:"hotel_id"              validate:"required,uuid"`
	RoomNumber          string                `json:"room_number"           validate:"required,max=10"`
	Floor               int                   `json:"floor"                 validate:"omitempty,min=0"`
	Capacity            int                   `json:"capacity"              validate:"required,min=1"`
	Price               float64               `json:"price"                 validate:"required,gt=0"`
	SeaView             *bool                 `json:"sea_view"              validate:"omitempty"`
	MountainView        *bool                 `json:"mountain_view"         validate:"omitempty"`
	Extendable          *bool                 `json:"extendable"            validate:"omitempty"`
	Damaged             *bool                 `json:"damaged"               validate:"omitempty"`
	Amenities           string                `json:"amenities"             validate:"omitempty,max=500"`
	Description         string                `json:"description"           validate:"omitempty,max=1000"`
	LastMaintenanceDate string                `json:"last_maintenance_date" validate:"omitempty,datetime=2006-01-02"`
	Image               *multipart.FileHeader `json:"image"                 validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile           multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	boolOf := func(b *bool) bool {
		return b != nil && *b
	}

	var lastMaintenance *time.Time
	if c.LastMaintenanceDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.CalendarDateFormat, c.LastMaintenanceDate); err == nil {
			lastMaintenance = &parsed
		}
	}

	return model.Room{
		ID:                  uuid.NewString(),
		HotelID:             c.HotelID,
		RoomNumber:          c.RoomNumber,
		Floor:               c.Floor,
		Capacity:            c.Capacity,
		Price:               c.Price,
		SeaView:             boolOf(c.SeaView),
		MountainView:        boolOf(c.MountainView),
		Extendable:          boolOf(c.Extendable),
		Damaged:             boolOf(c.Damaged),
		Amenities:           c.Amenities,
		Description:         c.Description,
		LastMaintenanceDate: lastMaintenance,
		Image:               imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber   string                `db:"room_number"   json:"room_number"   validate:"omitempty,max=10"`
	Floor        *int                  `db:"floor"         json:"floor"         validate:"omitempty,min=0"`
	Capacity     *int                  `db:"capacity"      json:"capacity"      validate:"omitempty,min=1"`
	Price        *float64              `db:"price"         json:"price"         validate:"omitempty,gt=0"`
	SeaView      *bool                 `db:"sea_view"      json:"sea_view"      validate:"omitempty"`
	MountainView *bool                 `db:"mountain_view" json:"mountain_view" validate:"omitempty"`
	Extendable   *bool                 `db:"extendable"    json:"extendable"    validate:"omitempty"`
	Damaged      *bool                 `db:"damaged"       json:"damaged"       validate:"omitempty"`
	Amenities    string                `db:"amenities"     json:"amenities"     validate:"omitempty,max=500"`
	Description  string                `db:"description"   json:"description"   validate:"omitempty,max=1000"`
	Image        *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

// SearchAvailableRequest carries the availability search window and the
// optional room and hotel filters.
type SearchAvailableRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Capacity  *int   `json:"capacity"`
	Area      string `json:"area"`
	Chain     string `json:"chain"`
	Category  *int   `json:"category"`
	MinPrice  *float64
	MaxPrice  *float64
	View      string `json:"view" validate:"omitempty,oneof=sea mountain"`
}

type RoomResponse struct {
	ID                  string  `json:"id"`
	HotelID             string  `json:"hotel_id"`
	RoomNumber          string  `json:"room_number"`
	Floor               int     `json:"floor"`
	Capacity            int     `json:"capacity"`
	Price               float64 `json:"price"`
	SeaView             bool    `json:"sea_view"`
	MountainView        bool    `json:"mountain_view"`
	Extendable          bool    `json:"extendable"`
	Damaged             bool    `json:"damaged"`
	Amenities           string  `json:"amenities"`
	Description         string  `json:"description"`
	LastMaintenanceDate string  `json:"last_maintenance_date,omitempty"`
	Image               string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.SeaView = model.SeaView
	r.MountainView = model.MountainView
	r.Extendable = model.Extendable
	r.Damaged = model.Damaged
	r.Amenities = model.Amenities
	r.Description = model.Description
	r.Image = model.Image

	if model.LastMaintenanceDate != nil {
		r.LastMaintenanceDate = timezone.Format(*model.LastMaintenanceDate, constant.CalendarDateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type AvailableRoomResponse struct {
	ID           string  `json:"id"`
	HotelID      string  `json:"hotel_id"`
	HotelName    string  `json:"hotel_name"`
	HotelRating  int     `json:"hotel_rating"`
	HotelCity    string  `json:"hotel_city"`
	ChainName    *string `json:"chain_name,omitempty"`
	RoomNumber   string  `json:"room_number"`
	Floor        int     `json:"floor"`
	Capacity     int     `json:"capacity"`
	Price        float64 `json:"price"`
	SeaView      bool    `json:"sea_view"`
	MountainView bool    `json:"mountain_view"`
	Extendable   bool    `json:"extendable"`
	Amenities    string  `json:"amenities"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
}

func (r *AvailableRoomResponse) FromModel(model model.AvailableRoom) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.HotelRating = model.HotelRating
	r.HotelCity = model.HotelCity
	r.ChainName = model.ChainName
	r.RoomNumber = model.RoomNumber
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.SeaView = model.SeaView
	r.MountainView = model.MountainView
	r.Extendable = model.Extendable
	r.Amenities = model.Amenities
	r.Description = model.Description
	r.Image = model.Image
}

type SearchAvailableResponse struct {
	Rooms     []AvailableRoomResponse `json:"rooms"`
	TotalData int                     `json:"total_data"`
}

func (r *SearchAvailableResponse) FromModels(models []model.AvailableRoom) {
	r.TotalData = len(models)

	r.Rooms = make([]AvailableRoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
