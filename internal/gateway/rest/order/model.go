package order

import (
	"encoding/json"
	"fmt"
	"time"
)

// Модели повторяют JSON сервиса заказов, включая его имена полей.

type orderModel struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Address        string   `json:"adresa"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	PhotoFilename  *string  `json:"photo_filename"`
	AIAnalysis     *string  `json:"ai_analysis"`
	HasEquipment   bool     `json:"ma_vse_potrebne"`
	EstimatedPrice *float64 `json:"estimated_price"`
	FinalPrice     *float64 `json:"final_price"`
	Status         string   `json:"status"`
	PaymentStatus  string   `json:"payment_status"`
	CustomerID     int64    `json:"customer_id"`
	WorkerID       *int64   `json:"worker_id"`
	CustomerName   *string  `json:"customer_name"`
	WorkerName     *string  `json:"worker_name"`
	CreatedAt      *isoTime `json:"created_at"`
	TakenAt        *isoTime `json:"taken_at"`
	CompletedAt    *isoTime `json:"completed_at"`
}

type ratingModel struct {
	ID              int64    `json:"id"`
	OrderID         int64    `json:"order_id"`
	CustomerID      int64    `json:"customer_id"`
	WorkerID        int64    `json:"worker_id"`
	CustomerRating  *int     `json:"customer_rating"`
	WorkerRating    *int     `json:"worker_rating"`
	CustomerComment *string  `json:"customer_comment"`
	WorkerComment   *string  `json:"worker_comment"`
	CreatedAt       *isoTime `json:"created_at"`
}

type userModel struct {
	ID            int64    `json:"id"`
	FirstName     string   `json:"jmeno"`
	LastName      string   `json:"prijmeni"`
	Phone         string   `json:"telefon"`
	Email         string   `json:"email"`
	Role          string   `json:"role"`
	EmailVerified bool     `json:"email_verified"`
	IsApproved    bool     `json:"is_approved"`
	NeedsHelp     bool     `json:"potrebuje_pomoc"`
	Tools         *string  `json:"naradi"`
	FreeDays      *string  `json:"volne_dny"`
	BirthDate     *string  `json:"datum_narozeni"`
	CreatedAt     *isoTime `json:"created_at"`
}

type currentUserResponse struct {
	User *userModel `json:"user"`
}

type actionResponse struct {
	Message          string       `json:"message"`
	Order            *orderModel  `json:"order"`
	Rating           *ratingModel `json:"rating"`
	PartialPayment   *float64     `json:"partial_payment"`
	RemainingPayment *float64     `json:"remaining_payment"`
}

type statisticsModel struct {
	TotalOrders     int64   `json:"total_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCustomers  int64   `json:"total_customers"`
	TotalWorkers    int64   `json:"total_workers"`
	ApprovedWorkers int64   `json:"approved_workers"`
	CompletionRate  float64 `json:"completion_rate"`
}

type userRatingsModel struct {
	UserID        int64         `json:"user_id"`
	AverageRating *float64      `json:"average_rating"`
	TotalRatings  int           `json:"total_ratings"`
	Ratings       []ratingModel `json:"ratings"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type completeRequest struct {
	FinalPrice float64 `json:"final_price"`
}

type priceRequest struct {
	Price float64 `json:"price"`
}

type payRequest struct {
	PaymentType string `json:"payment_type"`
}

type rateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// сервис заказов отдает время в isoformat без зоны, такие значения считаются UTC
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

type isoTime struct {
	time.Time
}

func (t *isoTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		return nil
	}

	for _, layout := range isoLayouts {
		parsed, err := time.Parse(layout, *raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", *raw)
}
