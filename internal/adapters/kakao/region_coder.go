package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"station-search-service/internal/domain"
	"station-search-service/internal/platform/obs"
)

// region_type "B" marks a 법정동 (legal district) document.
const legalDistrictType = "B"

type regionCodeResponse struct {
	Documents []struct {
		RegionType string `json:"region_type"`
		Code       string `json:"code"`
	} `json:"documents"`
}

// RegionCode resolves the legal-district code pair enclosing a coordinate.
// The first legal-district document wins; when none carries that tag the
// first document of any type is used. A missing or short code is
// domain.ErrDistrictNotFound.
func (c *Client) RegionCode(ctx context.Context, coord domain.Coordinate) (_ domain.RegionCode, err error) {
	defer obs.Time(ctx, "kakao.RegionCode")(&err)

	if c.regionCache != nil {
		region, ok, err := c.regionCache.Get(ctx, coord)
		if err != nil {
			log.Printf("region cache read failed: %v", err)
		} else if ok {
			return region, nil
		}
	}

	q := url.Values{}
	q.Set("x", strconv.FormatFloat(coord.Lng, 'f', -1, 64))
	q.Set("y", strconv.FormatFloat(coord.Lat, 'f', -1, 64))

	req, err := c.newRequest(ctx, regionCodePath, q)
	if err != nil {
		return domain.RegionCode{}, &domain.ProviderError{Provider: "kakao", Err: fmt.Errorf("region code: %w", err)}
	}

	resp, err := c.do(req)
	if err != nil {
		return domain.RegionCode{}, &domain.ProviderError{Provider: "kakao", Err: fmt.Errorf("region code: %w", err)}
	}
	defer resp.Body.Close()

	var decoded regionCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RegionCode{}, &domain.ProviderError{Provider: "kakao", Err: fmt.Errorf("region code: decode response: %w", err)}
	}

	if len(decoded.Documents) == 0 {
		return domain.RegionCode{}, domain.ErrDistrictNotFound
	}

	code := ""
	for _, doc := range decoded.Documents {
		if doc.RegionType == legalDistrictType {
			code = doc.Code
			break
		}
	}
	if code == "" {
		code = decoded.Documents[0].Code
	}

	if len(code) < 5 {
		return domain.RegionCode{}, domain.ErrDistrictNotFound
	}

	region := domain.RegionCode{
		Province: code[:2],
		District: code[:5],
	}

	if c.regionCache != nil {
		if err := c.regionCache.Put(ctx, coord, region); err != nil {
			log.Printf("region cache write failed: %v", err)
		}
	}

	return region, nil
}
