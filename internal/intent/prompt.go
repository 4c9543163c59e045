package intent

import "fmt"

const promptTemplate = `Extract real estate transaction details from this request:
"%s"

Return a JSON object with these fields:
- form_type: Type of document needed (use "purchase_agreement" for purchase requests, "lead_paint_disclosure" or "inspection_advisory" when those are asked for, otherwise "other")
- property_address: Full property address
- price: Purchase price as number (no formatting, no dollar signs)
- built_year: Year property was built
- escrow_days: Number of days for escrow
- contingencies: Array of contingencies mentioned
- confidence: Confidence score 0-1

You MUST return ONLY a valid JSON object with NO additional text, markdown, or explanation.

Example format:
{
    "form_type": "purchase_agreement",
    "property_address": "789 Ocean View Drive",
    "price": 1200000,
    "built_year": 1975,
    "escrow_days": 30,
    "contingencies": ["inspection", "loan"],
    "confidence": 0.95
}

Extract only what is explicitly mentioned. Use null for missing values.
`

// BuildPrompt embeds userInput in the extraction instructions.
func BuildPrompt(userInput string) string {
	return fmt.Sprintf(promptTemplate, userInput)
}
