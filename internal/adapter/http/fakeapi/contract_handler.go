package fakeapi

import (
	"fmt"
	"net/http"
	"sort"

	"sklad/internal/adapter/http/dto/request"
	"sklad/internal/domain/entities"
	"sklad/internal/domain/lifecycle"
	"sklad/pkg"

	"github.com/gin-gonic/gin"
)

var errContractNotFound = pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Договор не найден", http.StatusNotFound)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func contractOf(c *gin.Context, st *store) (*entities.Contract, bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return nil, false
	}
	ct, ok := st.contracts[id]
	if !ok {
		abort(c, errContractNotFound)
		return nil, false
	}
	return ct, true
}

func listContracts(c *gin.Context, st *store) {
	search := c.Query("search")
	out := []entities.Contract{}
	for _, ct := range st.contracts {
		if search != "" && !containsFold(ct.ContractNumber, search) && !containsFold(ct.ClientName, search) && !containsFold(ct.Location, search) {
			continue
		}
		out = append(out, *ct)
	}
	byNumber := c.DefaultQuery("sort_by", "contract_date") == "contract_number"
	desc := c.DefaultQuery("order", "desc") == "desc"
	less := func(a, b entities.Contract) bool {
		if byNumber {
			return a.ContractNumber < b.ContractNumber
		}
		return a.ContractDate.Before(b.ContractDate.Time)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	c.JSON(http.StatusOK, out)
}

func createContract(c *gin.Context, st *store) {
	var payload request.ContractCreateRequest
	if !bind(c, &payload) {
		return
	}
	date := entities.NewTimestamp(st.now().UTC())
	if payload.ContractDate != "" {
		if d, err := entities.ParseTimestamp(payload.ContractDate); err == nil {
			date = d
		}
	}
	ct := &entities.Contract{
		ID:                   st.id(),
		ContractNumber:       payload.ContractNumber,
		ContractDate:         date,
		ClientName:           payload.ClientName,
		Location:             payload.Location,
		ContractType:         payload.ContractType,
		Status:               entities.ContractStatusPlanned,
		PassportSeriesNumber: payload.PassportSeriesNumber,
		PassportIssuedBy:     payload.PassportIssuedBy,
		PassportIssueDate:    payload.PassportIssueDate,
		PassportDepCode:      payload.PassportDepCode,
		PassportAddress:      payload.PassportAddress,
		EstimatedDepth:       payload.EstimatedDepth,
		PricePerMeterSoil:    payload.PricePerMeterSoil,
		PricePerMeterRock:    payload.PricePerMeterRock,
	}
	if ct.ContractType == "" {
		ct.ContractType = entities.ContractTypeDrilling
	}
	st.contracts[ct.ID] = ct
	c.JSON(http.StatusOK, ct)
}

func getContract(c *gin.Context, st *store) {
	if ct, ok := contractOf(c, st); ok {
		c.JSON(http.StatusOK, ct)
	}
}

func updateContract(c *gin.Context, st *store) {
	ct, ok := contractOf(c, st)
	if !ok {
		return
	}
	var p request.ContractUpdateRequest
	if !bind(c, &p) {
		return
	}
	if p.TouchesFigures() && !lifecycle.ContractFiguresEditable(ct.Status) {
		abort(c, detail(http.StatusBadRequest, "Договор завершен, параметры бурения изменить нельзя"))
		return
	}
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setString(&ct.ClientName, p.ClientName)
	setString(&ct.Location, p.Location)
	if p.ContractDate != nil {
		if d, err := entities.ParseTimestamp(*p.ContractDate); err == nil {
			ct.ContractDate = d
		}
	}
	if p.Status != nil {
		ct.Status = *p.Status
	}
	if p.ContractType != nil {
		ct.ContractType = *p.ContractType
	}
	for dst, v := range map[**string]*string{
		&ct.PassportSeriesNumber: p.PassportSeriesNumber,
		&ct.PassportIssuedBy:     p.PassportIssuedBy,
		&ct.PassportIssueDate:    p.PassportIssueDate,
		&ct.PassportDepCode:      p.PassportDepCode,
		&ct.PassportAddress:      p.PassportAddress,
	} {
		if v != nil {
			*dst = v
		}
	}
	for dst, v := range map[**float64]*float64{
		&ct.EstimatedDepth:    p.EstimatedDepth,
		&ct.PricePerMeterSoil: p.PricePerMeterSoil,
		&ct.PricePerMeterRock: p.PricePerMeterRock,
		&ct.ActualDepthSoil:   p.ActualDepthSoil,
		&ct.ActualDepthRock:   p.ActualDepthRock,
		&ct.PipeSteelUsed:     p.PipeSteelUsed,
		&ct.PipePlasticUsed:   p.PipePlasticUsed,
	} {
		if v != nil {
			*dst = v
		}
	}
	c.JSON(http.StatusOK, ct)
}

func writeOffContract(st *store, ct *entities.Contract) int {
	n := 0
	for _, used := range []*float64{ct.PipeSteelUsed, ct.PipePlasticUsed} {
		if used != nil && *used > 0 {
			n++
		}
	}
	ct.Status = entities.ContractStatusCompleted
	return n
}

func writeOffPipes(c *gin.Context, st *store) {
	ct, ok := contractOf(c, st)
	if !ok {
		return
	}
	if !lifecycle.ContractAllows(ct.Status, lifecycle.ActionWriteOffPipes) {
		abort(c, detail(http.StatusBadRequest, "Договор уже завершен"))
		return
	}
	writeOffContract(st, ct)
	c.JSON(http.StatusOK, ct)
}

func writeOffAllPipes(c *gin.Context, st *store) {
	processed, movements := 0, 0
	for _, ct := range st.contracts {
		if ct.Status != entities.ContractStatusInProgress {
			continue
		}
		processed++
		movements += writeOffContract(st, ct)
	}
	if c.Query("no_history") == "true" {
		movements = 0
	}
	c.JSON(http.StatusOK, entities.PipeWriteOffSummary{ContractsProcessed: processed, Movements: movements})
}

func generateDocx(c *gin.Context, st *store) {
	ct, ok := contractOf(c, st)
	if !ok {
		return
	}
	data := []byte("PK\x03\x04 " + ct.ContractNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="contract_%d.docx"`, ct.ID))
	c.Data(http.StatusOK, docxContentType, data)
}

func calculateRevenue(c *gin.Context, st *store) {
	ct, ok := contractOf(c, st)
	if !ok {
		return
	}
	var p request.RevenueRequest
	if !bind(c, &p) {
		return
	}
	value := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	soil := p.MetersSoil * value(ct.PricePerMeterSoil)
	rock := p.MetersRock * value(ct.PricePerMeterRock)
	steel := value(p.SteelPipeMeters) * value(p.SteelPipePricePerMeter)
	plastic := value(p.PlasticPipeMeters) * value(p.PlasticPipePricePerMeter)

	line := func(name string, price, qty float64, unit string) entities.RevenueLine {
		sum := price * qty
		return entities.RevenueLine{Name: name, Price: &price, Quantity: &qty, Unit: unit, Sum: &sum}
	}
	r := entities.Revenue{
		ContractID: ct.ID,
		Items: []entities.RevenueLine{
			line("Бурение (грунт)", value(ct.PricePerMeterSoil), p.MetersSoil, string(entities.UnitMeter)),
			line("Бурение (скала)", value(ct.PricePerMeterRock), p.MetersRock, string(entities.UnitMeter)),
		},
		DrillingOnly:   soil + rock,
		PipeCostRetail: steel + plastic,
		Subtotal:       soil + rock + steel + plastic,
	}
	r.Total = r.Subtotal
	if p.MinPrice != nil && *p.MinPrice > r.Total {
		r.AppliedMinPrice = p.MinPrice
		r.Total = *p.MinPrice
	}
	r.NetProfit = r.Total - r.PipeCostPurchase
	c.JSON(http.StatusOK, r)
}

func profitReport(c *gin.Context, st *store) {
	c.JSON(http.StatusOK, st.profit)
}

func profitDetails(c *gin.Context, st *store) {
	e, ok := estimateOf(c, st)
	if !ok {
		return
	}
	d := entities.ProfitDetail{EstimateID: e.ID}
	for _, it := range e.Items {
		item := entities.ProfitDetailItem{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		retail := it.Quantity * it.UnitPrice
		item.TotalRetail = &retail
		if p := st.products[it.ProductID]; p != nil {
			item.ProductName = p.Name
			unit := string(p.Unit)
			purchase := it.Quantity * p.PurchasePrice
			diff := retail - purchase
			item.Unit, item.PurchasePrice, item.TotalPurchase, item.Difference = &unit, &p.PurchasePrice, &purchase, &diff
			d.TotalPurchase += purchase
		}
		d.TotalRetail += retail
		d.Items = append(d.Items, item)
	}
	d.TotalProfit = d.TotalRetail - d.TotalPurchase
	c.JSON(http.StatusOK, d)
}

func drillingProfit(c *gin.Context, st *store) {
	r := entities.DrillingProfitReport{Items: []entities.DrillingProfitItem{}}
	for _, ct := range st.contracts {
		if ct.Status != entities.ContractStatusCompleted || ct.ContractType != entities.ContractTypeDrilling {
			continue
		}
		item := entities.DrillingProfitItem{ContractID: ct.ID, ContractNumber: ct.ContractNumber, ClientName: ct.ClientName}
		for _, pair := range [][2]*float64{{ct.ActualDepthSoil, ct.PricePerMeterSoil}, {ct.ActualDepthRock, ct.PricePerMeterRock}} {
			if pair[0] != nil && pair[1] != nil {
				item.DrillingRetail += *pair[0] * *pair[1]
			}
		}
		item.Profit = item.DrillingRetail
		r.GrandTotalProfit += item.Profit
		r.Items = append(r.Items, item)
	}
	sort.Slice(r.Items, func(i, j int) bool { return r.Items[i].ContractID < r.Items[j].ContractID })
	c.JSON(http.StatusOK, r)
}

func dashboard(c *gin.Context, st *store) {
	c.JSON(http.StatusOK, st.dashboard)
}

func chat(c *gin.Context, st *store) {
	var payload request.ChatRequest
	if !bind(c, &payload) {
		return
	}
	reply := st.chatReply
	if reply.Response == "" {
		reply.Response = "Принято: " + payload.Message
	}
	if reply.FunctionResults == nil {
		reply.FunctionResults = []entities.ActionResult{}
	}
	c.JSON(http.StatusOK, reply)
}
