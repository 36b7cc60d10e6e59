package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"

	"github.com/judyrop/restaurant-pos/models"
)

func (h *Handler) listTables(c *gin.Context) {
	noStore(c)
	tables, err := h.store.ListTables(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to fetch tables", err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) getTable(c *gin.Context) {
	noStore(c)
	table, err := h.store.GetTable(c.Request.Context(), c.GetUint("id"))
	if err != nil {
		h.fail(c, "Table not found", err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) createTable(c *gin.Context) {
	var input models.CreateTableInput
	if !bind(c, &input) {
		return
	}
	var table models.Table
	if err := copier.Copy(&table, &input); err != nil {
		h.fail(c, "Failed to create table", err)
		return
	}
	if err := h.store.CreateTable(c.Request.Context(), &table); err != nil {
		h.fail(c, "Failed to create table", err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) updateTable(c *gin.Context) {
	var input models.UpdateTableInput
	if !bind(c, &input) {
		return
	}
	changes := input.Changes()
	if len(changes) == 0 {
		respondError(c, http.StatusBadRequest, "Nothing to update", errNoChanges)
		return
	}
	if err := h.store.UpdateTable(c.Request.Context(), c.GetUint("id"), changes); err != nil {
		h.fail(c, "Table not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table updated successfully"})
}

func (h *Handler) setTableStatus(c *gin.Context) {
	noStore(c)
	var input models.TableStatusInput
	if !bind(c, &input) {
		return
	}
	if err := h.store.SetTableStatus(c.Request.Context(), c.GetUint("id"), input.Status); err != nil {
		h.fail(c, "Table not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table status updated successfully"})
}

func (h *Handler) deleteTable(c *gin.Context) {
	if err := h.store.DeleteTable(c.Request.Context(), c.GetUint("id")); err != nil {
		h.fail(c, "Table not found", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}

func (h *Handler) resetTables(c *gin.Context) {
	n, err := h.store.ResetTables(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to reset tables", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All tables reset to available", "affectedRows": n})
}
