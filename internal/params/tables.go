package params

import "regexp"

// translations maps user-facing parameter names to their wire-protocol
// keys. Keys absent from this table pass through under their own name, so
// callers may always use wire keys directly. The table is injective: no
// two entries produce the same wire key.
var translations = map[string]string{
	"anonymizeIp":            "aip",
	"dataSource":             "ds",
	"queueTime":              "qt",
	"cacheBuster":            "z",
	"sessionControl":         "sc",
	"ipOverride":             "uip",
	"userAgentOverride":      "ua",
	"documentReferrer":       "dr",
	"campaignName":           "cn",
	"campaignSource":         "cs",
	"campaignMedium":         "cm",
	"campaignKeyword":        "ck",
	"campaignContent":        "cc",
	"campaignId":             "ci",
	"screenResolution":       "sr",
	"viewportSize":           "vp",
	"documentEncoding":       "de",
	"screenColors":           "sd",
	"userLanguage":           "ul",
	"javaEnabled":            "je",
	"flashVersion":           "fl",
	"hitType":                "t",
	"nonInteraction":         "ni",
	"documentLocation":       "dl",
	"documentHostname":       "dh",
	"documentPath":           "dp",
	"documentTitle":          "dt",
	"screenName":             "cd",
	"linkId":                 "linkid",
	"appName":                "an",
	"appId":                  "aid",
	"appVersion":             "av",
	"appInstallerId":         "aiid",
	"eventCategory":          "ec",
	"eventAction":            "ea",
	"eventLabel":             "el",
	"eventValue":             "ev",
	"transactionId":          "ti",
	"transactionAffiliation": "ta",
	"transactionRevenue":     "tr",
	"transactionShipping":    "ts",
	"transactionTax":         "tt",
	"currencyCode":           "cu",
	"socialNetwork":          "sn",
	"socialAction":           "sa",
	"socialTarget":           "st",
	"userTimingCategory":     "utc",
	"userTimingVariable":     "utv",
	"userTimingTime":         "utt",
	"userTimingLabel":        "utl",
	"pageLoadTime":           "plt",
	"dnsTime":                "dns",
	"pageDownloadTime":       "pdt",
	"redirectResponseTime":   "rrt",
	"tcpConnectTime":         "tcp",
	"serverResponseTime":     "srt",
	"exceptionDescription":   "exd",
	"isExceptionFatal":       "exf",
	"experimentId":           "xid",
	"experimentVariant":      "xvar",
}

// acceptedKeys lists every fixed wire-protocol key the collector
// understands. Keys outside this list (and the numbered patterns below)
// trigger a diagnostic warning on enqueue but are still sent.
var acceptedKeys = []string{
	"v", "tid", "cid", "uid",
	"aip", "ds", "qt", "z", "sc", "uip", "ua", "geoid",
	"dr", "cn", "cs", "cm", "ck", "cc", "ci", "gclid", "dclid",
	"sr", "vp", "de", "sd", "ul", "je", "fl",
	"t", "ni",
	"dl", "dh", "dp", "dt", "cd", "linkid",
	"an", "aid", "av", "aiid",
	"ec", "ea", "el", "ev",
	"ti", "ta", "tr", "ts", "tt",
	"in", "ip", "iq", "ic", "iv", "cu",
	"sn", "sa", "st",
	"utc", "utv", "utt", "utl",
	"plt", "dns", "pdt", "rrt", "tcp", "srt",
	"exd", "exf",
	"xid", "xvar",
}

// customPatterns matches the numbered parameter families: custom
// dimensions (cd1..cd200), custom metrics (cm1..cm200) and content
// groups (cg1..cg5).
var customPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^cd[0-9]+$`),
	regexp.MustCompile(`^cm[0-9]+$`),
	regexp.MustCompile(`^cg[0-9]+$`),
}

var accepted map[string]struct{}

func init() {
	accepted = make(map[string]struct{}, len(acceptedKeys))
	for _, k := range acceptedKeys {
		accepted[k] = struct{}{}
	}
}
