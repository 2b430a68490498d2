package open_dispute

import "github.com/handyhub-ie/HandyHub-BookingService/internal/domain"

// Причины споров, доступные заказчику
var AllowedReasons = []string{
	"Incomplete Work",
	"Overcharged",
	"Poor Service",
	"Handyman Didn't Show Up",
	"Other",
}

// In - заявление заказчика об открытии спора
type In struct {
	BookingID   int64
	CustomerID  int64
	Reason      string
	Description string
	Evidence    []string
}

// Out - открытый спор
type Out struct {
	Dispute *domain.Dispute
}
