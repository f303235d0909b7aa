package entities

import "time"

type Rating struct {
	ID              int64
	OrderID         int64
	CustomerID      int64
	WorkerID        int64
	CustomerScore   *int
	WorkerScore     *int
	CustomerComment *string
	WorkerComment   *string
	CreatedAt       time.Time
}

type RatingSubmission struct {
	Score   int
	Comment string
}

type UserRatings struct {
	UserID  int64
	Average *float64
	Total   int
	Ratings []Rating
}

type Statistics struct {
	TotalOrders     int64
	CompletedOrders int64
	TotalRevenue    float64
	TotalCustomers  int64
	TotalWorkers    int64
	ApprovedWorkers int64
	CompletionRate  float64
}
