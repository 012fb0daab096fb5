package service

import (
	"context"
	"fmt"
	"log"

	"github.com/artclub/backoffice-api/internal/domain/entity"
	"github.com/artclub/backoffice-api/internal/domain/repository"
	"github.com/artclub/backoffice-api/pkg/apperror"
	"github.com/artclub/backoffice-api/pkg/money"
	"github.com/artclub/backoffice-api/pkg/printer"
	"github.com/google/uuid"
)

// PrinterService reprints paper receipts at the back-office terminal.
// The thermal slip is a courtesy copy; the fiscal PDF in storage remains
// the authoritative document.
type PrinterService struct {
	printer      printer.Printer
	txRepo       repository.TransactionRepository
	settingsRepo repository.SettingsRepository
	printerType  string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	txRepo repository.TransactionRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		txRepo:       txRepo,
		settingsRepo: settingsRepo,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when the
// printer is disabled.
func (s *PrinterService) TestPrint() (*entity.PrintableReceipt, error) {
	receipt := &entity.PrintableReceipt{
		BrandName: "PRINTER TEST",
		Address:   "Test Address",
		ReceiptNo: "TEST-001",
		Date:      "Test Date",
		Items: []entity.PrintableReceiptItem{
			{Title: "Test Item 1", Quantity: 1, UnitGrossCents: 1000, TotalCents: 1000},
			{Title: "Test Item 2", Quantity: 2, UnitGrossCents: 500, TotalCents: 1000},
		},
		NetCents:   1681,
		VatCents:   319,
		GrossCents: 2000,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintTransactionReceipt fetches a paid transaction and prints its paper
// receipt. The transaction must already have a receipt number; the printed
// slip always references the same number as the fiscal PDF.
func (s *PrinterService) PrintTransactionReceipt(ctx context.Context, txID uuid.UUID) (*entity.PrintableReceipt, error) {
	tx, err := s.txRepo.GetWithItems(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	if tx.ReceiptNo == "" {
		return nil, apperror.NewConflictError("Transaction has no receipt yet")
	}

	seller, err := s.settingsRepo.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}

	receipt := &entity.PrintableReceipt{
		ReceiptNo:   tx.ReceiptNo,
		Date:        tx.CreatedAt.Format("2006-01-02 15:04"),
		PaymentType: tx.PaymentMethod,
		NetCents:    tx.NetCents,
		VatCents:    tx.VatCents,
		GrossCents:  tx.GrossCents,
		TseSerial:   tx.TseSerial,
		TseSigCount: tx.TseSignatureCounter,
	}
	if tx.PaymentApprovedAt != nil {
		receipt.Date = tx.PaymentApprovedAt.Format("2006-01-02 15:04")
	}

	if seller != nil {
		receipt.BrandName = seller.BrandName
		receipt.Address = seller.AddressLine1
		receipt.TaxID = seller.Steuernummer
	}
	if receipt.BrandName == "" {
		receipt.BrandName = "Artclub"
	}
	if tx.Location != nil {
		receipt.Location = tx.Location.Name
	}

	for _, it := range tx.Items {
		receipt.Items = append(receipt.Items, entity.PrintableReceiptItem{
			Title:          it.Title,
			Quantity:       it.Quantity,
			UnitGrossCents: it.UnitGrossCents,
			TotalCents:     it.LineTotalCents(),
		})
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (transaction %s): %v", txID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a PrintableReceipt into ESC/POS bytes.
func FormatReceipt(r *entity.PrintableReceipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.BrandName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Address != "" {
		doc.Text(r.Address)
	}
	if r.TaxID != "" {
		doc.TextF("St.-Nr.: %s", r.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Receipt info
	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)

	if r.Location != "" {
		doc.KeyValue("Location:", r.Location)
	}
	if r.PaymentType != "" {
		doc.KeyValue("Payment:", r.PaymentType)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Title, money.FormatEUR(item.TotalCents))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", money.FormatEUR(item.UnitGrossCents))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Net:", money.FormatEUR(r.NetCents)).
		KeyValue("VAT:", money.FormatEUR(r.VatCents))
	doc.SetBold(true).
		KeyValue("TOTAL:", money.FormatEUR(r.GrossCents)).
		SetBold(false)

	doc.Separator('-')

	// TSE block, kept short on paper
	if r.TseSerial != "" {
		doc.KeyValue("TSE:", r.TseSerial)
		doc.KeyValue("Sig-Count:", fmt.Sprintf("%d", r.TseSigCount))
		doc.Separator('-')
	}

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for supporting art!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
