package models

// Create inputs are copied onto their entity; update inputs carry only the
// fields present in the request and turn them into a column map.

type CreateTableInput struct {
	TableNumber string `json:"table_number" binding:"required,max=50"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateTableInput struct {
	TableNumber *string `json:"table_number" binding:"omitempty,min=1,max=50"`
	Capacity    *int    `json:"capacity" binding:"omitempty,gt=0"`
	Status      *string `json:"status" binding:"omitempty,tablestatus"`
}

func (in UpdateTableInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.TableNumber != nil {
		changes["table_number"] = *in.TableNumber
	}
	if in.Capacity != nil {
		changes["capacity"] = *in.Capacity
	}
	if in.Status != nil {
		changes["status"] = *in.Status
	}
	return changes
}

type TableStatusInput struct {
	Status string `json:"status" binding:"required,tablestatus"`
}

type CreateDishInput struct {
	Name        string   `json:"name" binding:"required,max=120"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	CategoryID  *uint    `json:"category_id"`
	IsAvailable *bool    `json:"is_available"`
}

// UpdateDishInput treats category_id 0 as "clear the category".
type UpdateDishInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	CategoryID  *uint    `json:"category_id"`
	IsAvailable *bool    `json:"is_available"`
}

func (in UpdateDishInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Price != nil {
		changes["price"] = *in.Price
	}
	if in.CategoryID != nil {
		if *in.CategoryID == 0 {
			changes["category_id"] = nil
		} else {
			changes["category_id"] = *in.CategoryID
		}
	}
	if in.IsAvailable != nil {
		changes["is_available"] = *in.IsAvailable
	}
	return changes
}

type CreateCategoryInput struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
}

func (in UpdateCategoryInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	return changes
}

type CreateTaxInput struct {
	Name     string   `json:"name" binding:"required,max=100"`
	Rate     *float64 `json:"rate" binding:"required,gte=0,lte=1"`
	IsActive *bool    `json:"is_active"`
}

type UpdateTaxInput struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Rate     *float64 `json:"rate" binding:"omitempty,gte=0,lte=1"`
	IsActive *bool    `json:"is_active"`
}

func (in UpdateTaxInput) Changes() map[string]any {
	changes := map[string]any{}
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Rate != nil {
		changes["rate"] = *in.Rate
	}
	if in.IsActive != nil {
		changes["is_active"] = *in.IsActive
	}
	return changes
}
