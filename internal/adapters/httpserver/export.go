package httpserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/intechds/storefront/internal/domain"
)

// XLSX exports for the back office. The whole collection goes into one
// sheet; there is nothing to page over.

func (s *Server) handleExportProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	products, err := s.catalog.Search(r.Context(), domain.ProductFilter{})
	if err != nil {
		s.fail(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Name", "SKU", "Category", "Brand", "Series", "Price", "Original Price", "In Stock", "Stock Qty", "Featured", "Warranty"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, p := range products {
		values := []any{p.ID, p.Name, p.SKU, p.Category, p.Brand, p.Series, p.Price, p.OriginalPrice, p.InStock, p.StockQuantity, p.Featured, p.Warranty}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	writeXLSX(w, f, "products.xlsx")
}

func (s *Server) handleExportOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	if !s.requireAdmin(w, r) {
		return
	}
	orders, err := s.orders.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	headers := []string{"ID", "Status", "Customer", "Company", "Email", "Phone", "Items", "Subtotal", "Shipping", "Total", "Payment", "Created", "Updated"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range orders {
		items := make([]string, len(o.Items))
		for i, it := range o.Items {
			items[i] = fmt.Sprintf("%s x%d", it.ProductName, it.Quantity)
		}
		values := []any{o.ID, string(o.Status), o.Customer.Name, o.Customer.Company, o.Customer.Email, o.Customer.Phone, strings.Join(items, "; "), o.Subtotal, o.ShippingCost, o.Total, o.PaymentMethod, o.CreatedAt, o.UpdatedAt}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	writeXLSX(w, f, "orders.xlsx")
}

func writeXLSX(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("xlsx write")
	}
}
