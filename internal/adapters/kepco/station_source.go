// Package kepco implements the StationSource port on the 환경공단
// EvCharger open-data API (apis.data.go.kr).
package kepco

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"station-search-service/internal/domain"
	"station-search-service/internal/platform/obs"
)

const resultCodeOK = "00"

// Client calls the EvCharger getChargerInfo endpoint. Safe for
// concurrent use; one attempt per call, no automatic retries.
type Client struct {
	session    *http.Client
	serviceKey string
	baseURL    string
}

func NewClient(serviceKey string) (*Client, error) {
	if serviceKey == "" {
		return nil, errors.New("data.go.kr service key is empty")
	}

	return &Client{
		session:    &http.Client{Timeout: 10 * time.Second},
		serviceKey: serviceKey,
		baseURL:    "http://apis.data.go.kr/B552584/EvCharger",
	}, nil
}

type chargerInfoResponse struct {
	XMLName xml.Name `xml:"response"`
	Header  struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items struct {
			Item []chargerItem `xml:"item"`
		} `xml:"items"`
		TotalCount int `xml:"totalCount"`
	} `xml:"body"`
}

type chargerItem struct {
	StatID     string `xml:"statId"`
	StatNm     string `xml:"statNm"`
	Addr       string `xml:"addr"`
	AddrDetail string `xml:"addrDetail"`
	Location   string `xml:"location"`
	Lat        string `xml:"lat"`
	Lng        string `xml:"lng"`
	UseTime    string `xml:"useTime"`
	BusiNm     string `xml:"busiNm"`
	Output     string `xml:"output"`
	ChgerType  string `xml:"chgerType"`
	Stat       string `xml:"stat"`
}

// FetchChargers returns the raw charger records for a legal district.
// A structurally valid response with a non-success result code yields an
// empty list, not an error; the caller proceeds with "no stations in this
// district" semantics.
func (c *Client) FetchChargers(
	ctx context.Context,
	region domain.RegionCode,
	page, pageSize int,
) (_ []domain.ChargerRecord, err error) {
	defer obs.Time(ctx, "kepco.FetchChargers")(&err)

	q := url.Values{}
	q.Set("serviceKey", c.serviceKey)
	q.Set("pageNo", strconv.Itoa(page))
	q.Set("numOfRows", strconv.Itoa(pageSize))
	q.Set("zcode", region.Province)
	q.Set("zscode", region.District)
	q.Set("dataType", "XML")

	endpoint := c.baseURL + "/getChargerInfo?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch chargers: create request: %w", err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: "kepco", Err: fmt.Errorf("fetch chargers: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, &domain.ProviderError{
			Provider: "kepco",
			Err:      fmt.Errorf("fetch chargers: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))),
		}
	}

	var decoded chargerInfoResponse
	if err := xml.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.ProviderError{Provider: "kepco", Err: fmt.Errorf("fetch chargers: decode response: %w", err)}
	}

	if decoded.Header.ResultCode != resultCodeOK {
		log.Printf(
			"kepco non-success result zcode=%s zscode=%s code=%s msg=%q",
			region.Province, region.District, decoded.Header.ResultCode, decoded.Header.ResultMsg,
		)
		return []domain.ChargerRecord{}, nil
	}

	items := decoded.Body.Items.Item
	records := make([]domain.ChargerRecord, 0, len(items))
	for _, item := range items {
		records = append(records, domain.ChargerRecord{
			StationID:     orDefault(item.StatID, "N/A"),
			Name:          orDefault(item.StatNm, "이름 없음"),
			Address:       orDefault(item.Addr, "주소 없음"),
			AddressDetail: item.AddrDetail,
			Location:      item.Location,
			Lat:           orDefault(item.Lat, "N/A"),
			Lng:           orDefault(item.Lng, "N/A"),
			UseTime:       orDefault(item.UseTime, "정보 없음"),
			OperatorName:  orDefault(item.BusiNm, "운영기관 없음"),
			Output:        orDefault(item.Output, "N/A"),
			ChargerType:   orDefault(item.ChgerType, "N/A"),
			Status:        orDefault(item.Stat, "N/A"),
		})
	}

	return records, nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
