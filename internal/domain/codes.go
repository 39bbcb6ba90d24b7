package domain

// Sentinel labels for codes absent from the provider's published tables.
const (
	UnknownChargerType = "N/A"
	UnknownStatus      = "상태확인불가"
)

// Connector-type codes from the 환경공단 EvCharger API.
var chargerTypeLabels = map[string]string{
	"01": "DC차데모",
	"02": "AC완속",
	"03": "DC차데모+AC3상",
	"04": "DC콤보",
	"05": "DC차데모+DC콤보",
	"06": "DC차데모+AC3상+DC콤보",
	"07": "AC3상",
	"08": "DC콤보(완속)",
	"09": "교류",
	"10": "수소",
	"99": "기타",
}

// Charger status codes from the 환경공단 EvCharger API.
var statusLabels = map[string]string{
	"1": "충전가능",
	"2": "충전중",
	"3": "고장",
	"4": "통신이상",
	"5": "점검중",
	"9": "충전예약",
}

// DecodeChargerType maps a raw connector-type code to its label.
// Total over all inputs: unrecognized codes map to UnknownChargerType.
func DecodeChargerType(code string) string {
	if label, ok := chargerTypeLabels[code]; ok {
		return label
	}
	return UnknownChargerType
}

// DecodeStatus maps a raw status code to its label.
// Total over all inputs: unrecognized codes map to UnknownStatus.
func DecodeStatus(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return UnknownStatus
}
