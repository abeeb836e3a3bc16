// Package identity runs the narrow second extraction pass for sender
// and receiver names and addresses. These four fields are the ones most
// often contaminated by neighboring invoice-summary text in the main
// catalog pass, so a block-isolated resolver re-derives them from the
// raw page text and its output overrides the catalog values.
package identity

import (
	"regexp"
	"strings"

	"shipmatrix/internal/domain"
)

var (
	reTracking = regexp.MustCompile(`1Z[A-Z0-9]{16}`)

	reSenderExplicit   = regexp.MustCompile(`(?i)Sender\s*:\s*([A-Z][A-Za-z\s]{2,40}?)\s+(\d+[^:]*?[A-Z]{2}\s+\d{5}(?:-\d{4})?)`)
	reReceiverExplicit = regexp.MustCompile(`(?i)Receiver\s*:\s*([A-Z][A-Za-z\s]{2,40}?)\s+(\d+[^:]*?[A-Z]{2}\s+\d{5}(?:-\d{4})?)`)

	reSenderMarker   = regexp.MustCompile(`(?i)Sender\s*:`)
	reReceiverMarker = regexp.MustCompile(`(?i)Receiver\s*:`)

	// Candidate enumeration for blocks without usable explicit labels.
	reNameCandidate = regexp.MustCompile(`\b([A-Z]{2,}(?:\s+[A-Z]{2,})*)\b`)
	reAddrCandidate = regexp.MustCompile(`(?i)(\d+\s+[A-Z0-9][^:]*?[A-Z]{2}\s+\d{5}(?:-\d{4})?)`)

	reNameDeny = regexp.MustCompile(`(?i)^(DELIVERY|SERVICE|INVOICE|CUSTOMER|WEIGHT|RESIDENTIAL|SURCHARGE|FUEL|DIMENSIONS|TOTAL|USERIDS?|SENDER|RECEIVER|GROUND|NEXT|DAY|AIR|TRACKING|NUMBER|ACCOUNT|PAGE|CT|KY|NV|AVE|STREET|ST|ROAD|RD|DRIVE|DR|LANE|LN|COURT|BLVD|BOULEVARD)(\s+\w+)*$`)

	reHasDigit          = regexp.MustCompile(`\d`)
	reTrailingAddrStart = regexp.MustCompile(`\s+\d+.*`)
	reStreetTypeTail    = regexp.MustCompile(`(?i)\s+(CT|COURT|AVE|AVENUE|ST|STREET|RD|ROAD|DR|DRIVE|BLVD|BOULEVARD|LN|LANE)\b.*`)
	reStateDigitTail    = regexp.MustCompile(`\s+[A-Z]{2}\s+\d`)

	reAddrServiceWords = regexp.MustCompile(`(?i)\s+(Ground|Air|Next|Day|Residential|Commercial)\s+`)
	reAddrInvoiceTail  = regexp.MustCompile(`(?i)\s+(Service|Surcharge|Weight|Total)\b.*`)
)

type candidate struct {
	value string
	pos   int
}

// Resolve scans every page for identifier-bounded sub-blocks and
// extracts one identity tuple per identifier occurrence. The first
// occurrence of an identifier wins when it repeats across pages.
func Resolve(pages []domain.Page) map[string]domain.IdentityTuple {
	tuples := make(map[string]domain.IdentityTuple)

	for _, page := range pages {
		locs := reTracking.FindAllStringIndex(page.Text, -1)
		for i, loc := range locs {
			tracking := page.Text[loc[0]:loc[1]]
			if _, seen := tuples[tracking]; seen {
				continue
			}
			end := len(page.Text)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			t := resolveBlock(page.Text[loc[0]:end])
			t.TrackingNumber = tracking
			t.PageNumber = page.Number
			tuples[tracking] = t
		}
	}
	return tuples
}

func resolveBlock(block string) domain.IdentityTuple {
	var t domain.IdentityTuple
	block = strings.Join(strings.Fields(block), " ")

	// Explicit labels are the most reliable source.
	if m := reSenderExplicit.FindStringSubmatch(block); m != nil {
		name := strings.TrimSpace(reTrailingAddrStart.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if len(name) >= 4 && !startsWithDigit(name) {
			t.SenderName = name
			t.SenderAddress = strings.TrimSpace(m[2])
		}
	}
	if m := reReceiverExplicit.FindStringSubmatch(block); m != nil {
		name := strings.TrimSpace(reTrailingAddrStart.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if len(name) >= 4 && !startsWithDigit(name) {
			t.ReceiverName = name
			t.ReceiverAddress = strings.TrimSpace(m[2])
		}
	}

	if t.SenderName == "" || t.ReceiverName == "" {
		assignPositional(&t, block)
	}

	t.SenderName = finalizeName(t.SenderName)
	t.ReceiverName = finalizeName(t.ReceiverName)
	return t
}

// assignPositional enumerates name and address candidates and splits
// them around the Receiver: marker: candidates before it belong to the
// sender, after it to the receiver. Without a marker the first and last
// candidates are used.
func assignPositional(t *domain.IdentityTuple, block string) {
	names := nameCandidates(block)
	addrs := addressCandidates(block)

	senderEnd := -1
	receiverStart := len(block) + 1
	if loc := reSenderMarker.FindStringIndex(block); loc != nil {
		senderEnd = loc[1]
	}
	if loc := reReceiverMarker.FindStringIndex(block); loc != nil {
		receiverStart = loc[0]
	}

	if t.SenderName == "" && len(names) > 0 {
		t.SenderName = pickBetween(names, senderEnd, receiverStart, names[0].value)
	}
	if t.ReceiverName == "" && len(names) > 1 {
		t.ReceiverName = pickAfter(names, receiverStart, names[len(names)-1].value)
	}
	if t.SenderAddress == "" && len(addrs) > 0 {
		t.SenderAddress = pickBetween(addrs, senderEnd, receiverStart, addrs[0].value)
	}
	if t.ReceiverAddress == "" && len(addrs) > 1 {
		t.ReceiverAddress = pickAfter(addrs, receiverStart, addrs[len(addrs)-1].value)
	}
}

func pickBetween(cands []candidate, after, before int, fallback string) string {
	if after > 0 {
		for _, c := range cands {
			if c.pos > after && c.pos < before {
				return c.value
			}
		}
	}
	return fallback
}

func pickAfter(cands []candidate, start int, fallback string) string {
	for _, c := range cands {
		if c.pos > start {
			return c.value
		}
	}
	return fallback
}

func nameCandidates(block string) []candidate {
	var out []candidate
	for _, loc := range reNameCandidate.FindAllStringSubmatchIndex(block, -1) {
		name := block[loc[2]:loc[3]]
		if reNameDeny.MatchString(name) {
			continue
		}
		if reHasDigit.MatchString(name) || len(name) < 4 || len(name) > 40 {
			continue
		}
		out = append(out, candidate{value: name, pos: loc[0]})
	}
	return out
}

func addressCandidates(block string) []candidate {
	var out []candidate
	for _, loc := range reAddrCandidate.FindAllStringSubmatchIndex(block, -1) {
		addr := block[loc[2]:loc[3]]
		addr = reAddrServiceWords.ReplaceAllString(addr, " ")
		addr = reAddrInvoiceTail.ReplaceAllString(addr, "")
		addr = strings.Join(strings.Fields(addr), " ")
		if len(addr) < 10 {
			continue
		}
		out = append(out, candidate{value: addr, pos: loc[0]})
	}
	return out
}

// finalizeName strips address fragments that survived candidate
// selection and drops the name entirely when too little remains.
func finalizeName(name string) string {
	if name == "" {
		return ""
	}
	name = reTrailingAddrStart.ReplaceAllString(name, "")
	name = reStreetTypeTail.ReplaceAllString(name, "")
	name = reStateDigitTail.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	if len(name) < 4 {
		return ""
	}
	return name
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
