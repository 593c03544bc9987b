package reports

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmdatafocus/warehouse_backend/config"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type StockBalanceResponse struct {
	BizplaceName string          `json:"bizplace_name"`
	ProductName  string          `json:"product_name"`
	Sku          string          `json:"sku"`
	PalletCount  int             `json:"pallet_count"`
	TotalQty     decimal.Decimal `json:"total_qty"`
	LockedQty    decimal.Decimal `json:"locked_qty"`
	RemainQty    decimal.Decimal `json:"remain_qty"`
	TotalWeight  decimal.Decimal `json:"total_weight"`
}

func getStockBalanceReport(ctx context.Context, domainId string) ([]*StockBalanceResponse, error) {

	sql := `
SELECT
    bizplaces.name AS bizplace_name,
    products.name AS product_name,
    products.sku,
    inv.pallet_count,
    inv.total_qty,
    inv.locked_qty,
    inv.total_qty - inv.locked_qty AS remain_qty,
    inv.total_weight
FROM
    (
        SELECT
            bizplace_id,
            product_id,
            COUNT(id) AS pallet_count,
            SUM(qty) AS total_qty,
            SUM(locked_qty) AS locked_qty,
            SUM(weight) AS total_weight
        FROM
            inventories
        WHERE
            domain_id = ? AND status <> 'TERMINATED'
        GROUP BY
            bizplace_id, product_id
    ) AS inv
    LEFT JOIN bizplaces ON bizplaces.id = inv.bizplace_id
    LEFT JOIN products ON products.id = inv.product_id;
`

	var records []*StockBalanceResponse
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, domainId).Scan(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func ExportStockBalanceExcel(w http.ResponseWriter, r *http.Request, domainId string) {

	f := excelize.NewFile()
	_, err := f.NewSheet("Sheet1")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
	}
	data, err := getStockBalanceReport(r.Context(), domainId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
	}

	// Add headers
	f.SetCellValue("Sheet1", "A1", "Customer")
	f.SetCellValue("Sheet1", "B1", "Product")
	f.SetCellValue("Sheet1", "C1", "SKU")
	f.SetCellValue("Sheet1", "D1", "Pallets")
	f.SetCellValue("Sheet1", "E1", "Qty")
	f.SetCellValue("Sheet1", "F1", "LockedQty")
	f.SetCellValue("Sheet1", "G1", "RemainQty")
	f.SetCellValue("Sheet1", "H1", "Weight")

	// Add data
	for i, d := range data {
		f.SetCellValue("Sheet1", "A"+fmt.Sprint(i+2), d.BizplaceName)
		f.SetCellValue("Sheet1", "B"+fmt.Sprint(i+2), d.ProductName)
		f.SetCellValue("Sheet1", "C"+fmt.Sprint(i+2), d.Sku)
		f.SetCellValue("Sheet1", "D"+fmt.Sprint(i+2), d.PalletCount)
		f.SetCellValue("Sheet1", "E"+fmt.Sprint(i+2), d.TotalQty)
		f.SetCellValue("Sheet1", "F"+fmt.Sprint(i+2), d.LockedQty)
		f.SetCellValue("Sheet1", "G"+fmt.Sprint(i+2), d.RemainQty)
		f.SetCellValue("Sheet1", "H"+fmt.Sprint(i+2), d.TotalWeight)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=stock_balance.xlsx")
	if err := f.Write(w); err != nil {
		http.Error(w, "Failed to write file", http.StatusInternalServerError)
	}
}
