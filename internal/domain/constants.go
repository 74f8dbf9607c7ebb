package domain

// Layout defaults
const (
	DefaultPixelsPerHour    = 100.0
	DefaultMinimumBlockSize = 25.0
	MinVisibleHour          = 0
	MaxVisibleHour          = 23
)

// Default colors for schedule items when a service has none
const (
	DefaultItemColor       = "#F8E1EC"
	DefaultItemBorderColor = "#D63384"
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// InactiveStatuses список статусов неактивных бронирований
// Такие бронирования не попадают в сетку расписания
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
