package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) listDishes(c *gin.Context) {
	dishes, err := h.store.ListDishes(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch dishes", err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *Handler) getDish(c *gin.Context) {
	dish, err := h.store.GetDish(c.Request.Context(), c.GetUint("id"))
	if err != nil {
		h.fail(c, "Dish not found", err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) createDish(c *gin.Context) {
	var input models.CreateDishInput
	if !bind(c, &input) {
		return
	}
	var dish models.Dish
	if err := copier.Copy(&dish, &input); err != nil {
		h.fail(c, "Failed to create dish", err)
		return
	}
	dish.Price = *input.Price
	dish.IsAvailable = input.IsAvailable == nil || *input.IsAvailable
	created, err := h.store.CreateDish(c.Request.Context(), &dish)
	if err != nil {
		h.fail(c, "Failed to create dish", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) updateDish(c *gin.Context) {
	var input models.UpdateDishInput
	if !bind(c, &input) {
		return
	}
	changes := input.Changes()
	if len(changes) == 0 {
		respondError(c, http.StatusBadRequest, "Nothing to update", errNoChanges)
		return
	}
	if err := h.store.UpdateDish(c.Request.Context(), c.GetUint("id"), changes); err != nil {
		h.fail(c, "Dish not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated successfully"})
}

func (h *Handler) toggleDish(c *gin.Context) {
	dish, err := h.store.ToggleDishAvailability(c.Request.Context(), c.GetUint("id"))
	if err != nil {
		h.fail(c, "Dish not found", err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) deleteDish(c *gin.Context) {
	if err := h.store.DeleteDish(c.Request.Context(), c.GetUint("id")); err != nil {
		h.fail(c, "Dish not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish deleted successfully"})
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.store.ListCategories(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) getCategory(c *gin.Context) {
	category, err := h.store.GetCategory(c.Request.Context(), c.GetUint("id"))
	if err != nil {
		h.fail(c, "Category not found", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *Handler) createCategory(c *gin.Context) {
	var input models.CreateCategoryInput
	if !bind(c, &input) {
		return
	}
	category := models.Category{Name: input.Name}
	if err := h.store.CreateCategory(c.Request.Context(), &category); err != nil {
		h.fail(c, "Failed to create category", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) updateCategory(c *gin.Context) {
	var input models.UpdateCategoryInput
	if !bind(c, &input) {
		return
	}
	changes := input.Changes()
	if len(changes) == 0 {
		respondError(c, http.StatusBadRequest, "Nothing to update", errNoChanges)
		return
	}
	if err := h.store.UpdateCategory(c.Request.Context(), c.GetUint("id"), changes); err != nil {
		h.fail(c, "Category not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Request.Context(), c.GetUint("id")); err != nil {
		h.fail(c, "Category not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *Handler) listTaxes(c *gin.Context) {
	taxes, err := h.store.ListTaxes(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch taxes", err)
		return
	}
	c.JSON(http.StatusOK, taxes)
}

func (h *Handler) getTax(c *gin.Context) {
	tax, err := h.store.GetTax(c.Request.Context(), c.GetUint("id"))
	if err != nil {
		h.fail(c, "Tax not found", err)
		return
	}
	c.JSON(http.StatusOK, tax)
}

func (h *Handler) createTax(c *gin.Context) {
	var input models.CreateTaxInput
	if !bind(c, &input) {
		return
	}
	tax := models.Tax{Name: input.Name, Rate: *input.Rate, IsActive: true}
	if input.IsActive != nil {
		tax.IsActive = *input.IsActive
	}
	if err := h.store.CreateTax(c.Request.Context(), &tax); err != nil {
		h.fail(c, "Failed to create tax", err)
		return
	}
	c.JSON(http.StatusCreated, tax)
}

func (h *Handler) updateTax(c *gin.Context) {
	var input models.UpdateTaxInput
	if !bind(c, &input) {
		return
	}
	changes := input.Changes()
	if len(changes) == 0 {
		respondError(c, http.StatusBadRequest, "Nothing to update", errNoChanges)
		return
	}
	if err := h.store.UpdateTax(c.Request.Context(), c.GetUint("id"), changes); err != nil {
		h.fail(c, "Tax not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tax updated successfully"})
}

func (h *Handler) deleteTax(c *gin.Context) {
	if err := h.store.DeleteTax(c.Request.Context(), c.GetUint("id")); err != nil {
		h.fail(c, "Tax not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tax deleted successfully"})
}
