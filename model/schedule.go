package model

// Input cho các thao tác trên lịch chiếu theo ngày

type RowInput struct {
	BookingID string `json:"bookingId"`
	Slot      string `json:"slot" validate:"omitempty,max=10"`
	Kind      string `json:"kind" validate:"omitempty,oneof=prime extra"`
	FilmID    string `json:"filmId"`
	AudID     uint   `json:"audId"`
	PrimeHM   string `json:"primeHM" validate:"omitempty,timehm"`
}

type UpdateRowInput struct {
	Slot    *string `json:"slot" validate:"omitempty,max=10"`
	FilmID  *string `json:"filmId"`
	AudID   *uint   `json:"audId"`
	PrimeHM *string `json:"primeHM" validate:"omitempty,timehm"`
}

type SetStartInput struct {
	ShowID string `json:"showId" validate:"required"`
	// Chuỗi rỗng nghĩa là ẩn suất chiếu
	StartHM string `json:"startHM" validate:"omitempty,timehm"`
}

type SetAuditoriumInput struct {
	ShowID string `json:"showId" validate:"required"`
	AudID  *uint  `json:"audId"`
}

type SetFilmInput struct {
	ShowID string  `json:"showId" validate:"required"`
	FilmID *string `json:"filmId"`
}

type ManualShowInput struct {
	RowID   string `json:"rowId" validate:"required"`
	StartHM string `json:"startHM" validate:"required,timehm"`
}

type SwitchDateInput struct {
	Date string `json:"date" validate:"required,isodate"`
}

type CopyScheduleInput struct {
	FromDate string   `json:"fromDate" validate:"required,isodate"`
	ToDates  []string `json:"toDates" validate:"required,min=1,dive,isodate"`
}

type OperatingWindowInput struct {
	FirstHM string `json:"firstHM" validate:"required,timehm"`
	LastHM  string `json:"lastHM" validate:"required,timehm"`
}
