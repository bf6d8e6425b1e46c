package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/user"
)

// Request bodies.

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type FinishStageRequest struct {
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

type NoteRequest struct {
	Text string `json:"text"`
}

type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

type DeltaRequest struct {
	Delta int `json:"delta"`
}

type BoxRequest struct {
	Label string `json:"label"`
}

type CreateTaskRequest struct {
	Name       string     `json:"name"`
	TaskType   string     `json:"taskType"`
	Frequency  string     `json:"frequency"`
	OperatorID int        `json:"operatorId"`
	DueAt      *time.Time `json:"dueAt"`
	Criteria   string     `json:"criteria"`
}

type SubmitEvidenceRequest struct {
	Link     string `json:"link"`
	Notes    string `json:"notes"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

type ProductImageRequest struct {
	URL string `json:"url"`
}

// Response bodies.

type UserResponse struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type OrderSummary struct {
	OrderNumber    int        `json:"orderNumber"`
	Status         string     `json:"status"`
	Customer       string     `json:"customer"`
	City           string     `json:"city"`
	Address        string     `json:"address"`
	Seller         string     `json:"seller"`
	CreatedAt      time.Time  `json:"createdAt"`
	Picker         *string    `json:"picker"`
	Packer         *string    `json:"packer"`
	PickStartedAt  *time.Time `json:"pickStartedAt"`
	PickFinishedAt *time.Time `json:"pickFinishedAt"`
	PackStartedAt  *time.Time `json:"packStartedAt"`
	PackFinishedAt *time.Time `json:"packFinishedAt"`
}

type OrderDetail struct {
	OrderSummary
	OperatorID  int     `json:"operatorId"`
	PickerNotes *string `json:"pickerNotes"`
	PackerNotes *string `json:"packerNotes"`
}

type DispatchReadyOrder struct {
	OrderNumber    int                 `json:"orderNumber"`
	Customer       string              `json:"customer"`
	City           string              `json:"city"`
	Address        string              `json:"address"`
	Seller         string              `json:"seller"`
	Picker         *string             `json:"picker"`
	Packer         *string             `json:"packer"`
	PackFinishedAt *time.Time          `json:"packFinishedAt"`
	Lines          []DispatchReadyLine `json:"lines"`
}

type DispatchReadyLine struct {
	LineID            int     `json:"lineId"`
	Sequence          int     `json:"sequence"`
	Reference         string  `json:"reference"`
	RequestedQuantity int     `json:"requestedQuantity"`
	PackedQuantity    *int    `json:"packedQuantity"`
	Box               *string `json:"box"`
}

type OrderLine struct {
	LineID            int     `json:"lineId"`
	OrderNumber       int     `json:"orderNumber"`
	Sequence          int     `json:"sequence"`
	Reference         string  `json:"reference"`
	Description       string  `json:"description"`
	RequestedQuantity int     `json:"requestedQuantity"`
	PickedQuantity    *int    `json:"pickedQuantity"`
	PackedQuantity    *int    `json:"packedQuantity"`
	Box               *string `json:"box"`
	UnitValue         float64 `json:"unitValue"`
	PickerNotes       *string `json:"pickerNotes"`
	PackerNotes       *string `json:"packerNotes"`
}

type LineDetailWithImage struct {
	LineID            int     `json:"lineId"`
	Sequence          int     `json:"sequence"`
	Reference         string  `json:"reference"`
	RequestedQuantity int     `json:"requestedQuantity"`
	PickedQuantity    *int    `json:"pickedQuantity"`
	PackedQuantity    *int    `json:"packedQuantity"`
	Box               *string `json:"box"`
	Description       *string `json:"description"`
	ImageURL          *string `json:"imageUrl"`
}

type TaskCreated struct {
	TaskID int `json:"taskId"`
}

type TaskAssignment struct {
	AssignmentID       int        `json:"assignmentId"`
	TaskID             int        `json:"taskId"`
	TaskName           string     `json:"taskName"`
	TaskType           string     `json:"taskType"`
	Frequency          string     `json:"frequency"`
	EvaluationCriteria string     `json:"evaluationCriteria"`
	Status             string     `json:"status"`
	AssignedAt         time.Time  `json:"assignedAt"`
	DueAt              *time.Time `json:"dueAt"`
	LatestEvidence     *Evidence  `json:"latestEvidence"`
}

type Evidence struct {
	EvidenceID int       `json:"evidenceId"`
	Link       string    `json:"link"`
	Notes      string    `json:"notes,omitempty"`
	FileType   string    `json:"fileType,omitempty"`
	FileSize   int64     `json:"fileSize,omitempty"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Product struct {
	ProductID   int     `json:"productId"`
	Reference   string  `json:"reference"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func toUserResponse(account *user.User) UserResponse {
	return UserResponse{
		ID:        account.ID().Int(),
		Username:  account.Username(),
		FirstName: account.FirstName(),
		LastName:  account.LastName(),
		Phone:     account.Phone(),
		Role:      account.Role(),
	}
}

func toOrderSummary(row queries.OrderSummaryResponse) OrderSummary {
	return OrderSummary{
		OrderNumber:    row.OrderNumber,
		Status:         row.Status,
		Customer:       row.Customer,
		City:           row.City,
		Address:        row.Address,
		Seller:         row.Seller,
		CreatedAt:      row.CreatedAt,
		Picker:         row.Picker,
		Packer:         row.Packer,
		PickStartedAt:  row.PickStartedAt,
		PickFinishedAt: row.PickFinishedAt,
		PackStartedAt:  row.PackStartedAt,
		PackFinishedAt: row.PackFinishedAt,
	}
}

func toOrderSummaries(rows []queries.OrderSummaryResponse) []OrderSummary {
	response := make([]OrderSummary, len(rows))
	for i, row := range rows {
		response[i] = toOrderSummary(row)
	}
	return response
}

func toOrderDetail(row queries.OrderDetailResponse) OrderDetail {
	return OrderDetail{
		OrderSummary: OrderSummary{
			OrderNumber:    row.OrderNumber,
			Status:         row.Status,
			Customer:       row.Customer,
			City:           row.City,
			Address:        row.Address,
			Seller:         row.Seller,
			CreatedAt:      row.CreatedAt,
			Picker:         row.Picker,
			Packer:         row.Packer,
			PickStartedAt:  row.PickStartedAt,
			PickFinishedAt: row.PickFinishedAt,
			PackStartedAt:  row.PackStartedAt,
			PackFinishedAt: row.PackFinishedAt,
		},
		OperatorID:  row.OperatorID,
		PickerNotes: row.PickerNotes,
		PackerNotes: row.PackerNotes,
	}
}

func toDispatchReadyOrders(rows []queries.DispatchReadyOrderResponse) []DispatchReadyOrder {
	response := make([]DispatchReadyOrder, len(rows))
	for i, row := range rows {
		lines := make([]DispatchReadyLine, len(row.Lines))
		for j, line := range row.Lines {
			lines[j] = DispatchReadyLine{
				LineID:            line.LineID,
				Sequence:          line.Sequence,
				Reference:         line.Reference,
				RequestedQuantity: line.RequestedQuantity,
				PackedQuantity:    line.PackedQuantity,
				Box:               line.Box,
			}
		}
		response[i] = DispatchReadyOrder{
			OrderNumber:    row.OrderNumber,
			Customer:       row.Customer,
			City:           row.City,
			Address:        row.Address,
			Seller:         row.Seller,
			Picker:         row.Picker,
			Packer:         row.Packer,
			PackFinishedAt: row.PackFinishedAt,
			Lines:          lines,
		}
	}
	return response
}

func toOrderLines(rows []queries.OrderLineResponse) []OrderLine {
	response := make([]OrderLine, len(rows))
	for i, row := range rows {
		response[i] = OrderLine{
			LineID:            row.LineID,
			OrderNumber:       row.OrderNumber,
			Sequence:          row.Sequence,
			Reference:         row.Reference,
			Description:       row.Description,
			RequestedQuantity: row.RequestedQuantity,
			PickedQuantity:    row.PickedQuantity,
			PackedQuantity:    row.PackedQuantity,
			Box:               row.Box,
			UnitValue:         row.UnitValue,
			PickerNotes:       row.PickerNotes,
			PackerNotes:       row.PackerNotes,
		}
	}
	return response
}

func toLineDetailsWithImages(rows []queries.LineDetailWithImageResponse) []LineDetailWithImage {
	response := make([]LineDetailWithImage, len(rows))
	for i, row := range rows {
		response[i] = LineDetailWithImage{
			LineID:            row.LineID,
			Sequence:          row.Sequence,
			Reference:         row.Reference,
			RequestedQuantity: row.RequestedQuantity,
			PickedQuantity:    row.PickedQuantity,
			PackedQuantity:    row.PackedQuantity,
			Box:               row.Box,
			Description:       row.Description,
			ImageURL:          row.ImageURL,
		}
	}
	return response
}

func toTaskAssignments(rows []queries.TaskAssignmentResponse) []TaskAssignment {
	response := make([]TaskAssignment, len(rows))
	for i, row := range rows {
		assignment := TaskAssignment{
			AssignmentID:       row.AssignmentID,
			TaskID:             row.TaskID,
			TaskName:           row.TaskName,
			TaskType:           row.TaskType,
			Frequency:          row.Frequency,
			EvaluationCriteria: row.EvaluationCriteria,
			Status:             row.Status,
			AssignedAt:         row.AssignedAt,
			DueAt:              row.DueAt,
		}
		if row.LatestEvidence != nil {
			assignment.LatestEvidence = &Evidence{
				EvidenceID: row.LatestEvidence.EvidenceID,
				Link:       row.LatestEvidence.Link,
				Notes:      row.LatestEvidence.Notes,
				FileType:   row.LatestEvidence.FileType,
				FileSize:   row.LatestEvidence.FileSize,
				UploadedBy: row.LatestEvidence.UploadedBy,
				UploadedAt: row.LatestEvidence.UploadedAt,
			}
		}
		response[i] = assignment
	}
	return response
}

func toProducts(rows []queries.ProductResponse) []Product {
	response := make([]Product, len(rows))
	for i, row := range rows {
		response[i] = Product{
			ProductID:   row.ProductID,
			Reference:   row.Reference,
			Description: row.Description,
			ImageURL:    row.ImageURL,
		}
	}
	return response
}
