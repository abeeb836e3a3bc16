package domain

// Token is one positioned text unit from the page tokenizer. Box is
// left, top, right, bottom in page coordinates. The extraction path only
// needs Text; boxes are carried for coordinate-aware variants.
type Token struct {
	Text string
	Box  [4]int
}

// Page is one tokenized document page. Text is the tokens joined by single
// spaces, which is the form every pattern in the pipeline matches against.
type Page struct {
	Number int
	Tokens []Token
	Text   string
}

// InvoiceUnit is one logical invoice: a contiguous page range sharing one
// header, as grouped by the boundary detector.
type InvoiceUnit struct {
	Header    InvoiceHeader
	PageNums  []int
	PageTexts []string
}
