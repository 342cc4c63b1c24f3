package pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"sentag/internal/models"
)

// Generator — интерфейс (удобно мокать в тестах)
type Generator interface {
	GenerateRequestSummary(form *models.RequestForm) ([]byte, error)
}

// RequestGenerator — PDF-выгрузка заявки для админ-панели
type RequestGenerator struct {
	FontPath string // путь до TTF с кириллицей, например "assets/fonts/DejaVuSans.ttf"
	fontName string
}

func NewRequestGenerator(fontPath string) *RequestGenerator {
	return &RequestGenerator{
		FontPath: fontPath,
		fontName: "DejaVu",
	}
}

func (g *RequestGenerator) GenerateRequestSummary(form *models.RequestForm) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Заявка №%d", form.ID), false)
	pdf.SetAuthor("Sentag", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addUTF8Font(pdf)
	pdf.AddPage()

	// ===== Заголовок
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "ЗАЯВКА НА РАСЧЕТ", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("№ %d  от  %s", form.ID, form.CreatedAt.Format("02.01.2006"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Контакты
	g.sectionTitle(pdf, "Контакты")
	g.kvLine(pdf, "ФИО", form.FullName)
	g.kvLine(pdf, "Телефон", form.Phone)
	g.kvLine(pdf, "Email", form.Email)
	g.kvLine(pdf, "Компания", form.Company)
	g.kvLine(pdf, "Должность", form.Role)
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Объект
	g.sectionTitle(pdf, "Объект")
	g.kvLine(pdf, "Название", form.ObjectName)
	g.kvLine(pdf, "Адрес", form.ObjectAddress)
	if form.VisitorsInfo != nil {
		g.kvLine(pdf, "Посетители", *form.VisitorsInfo)
	}
	if form.PoolSize != nil {
		g.kvLine(pdf, "Размер бассейна", *form.PoolSize)
	}
	if form.Deadline != nil {
		g.kvLine(pdf, "Срок", *form.Deadline)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Воронка
	g.sectionTitle(pdf, "Воронка")
	g.kvLine(pdf, "Статус", form.Status)
	if form.Step1CompletedAt != nil {
		g.kvLine(pdf, "Шаг 1 завершён", form.Step1CompletedAt.Format("02.01.2006 15:04"))
	}
	if form.Step2CompletedAt != nil {
		g.kvLine(pdf, "Шаг 2 завершён", form.Step2CompletedAt.Format("02.01.2006 15:04"))
	}
	if len(form.PoolSchemeURLs) > 0 {
		g.kvLine(pdf, "Файлов схем", fmt.Sprintf("%d", len(form.PoolSchemeURLs)))
	}

	// ===== Нумерация страниц
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Стр. %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render request pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// addUTF8Font — без TTF с кириллицей текст в PDF превратится в кашу;
// при отсутствии файла падаем на встроенный Helvetica.
func (g *RequestGenerator) addUTF8Font(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		g.fontName = "Helvetica"
		return
	}
	if _, err := os.Stat(g.FontPath); err != nil {
		g.fontName = "Helvetica"
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *RequestGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *RequestGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	if val == "" {
		return
	}
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *RequestGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
