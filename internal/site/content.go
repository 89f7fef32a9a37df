package site

// Feature is one hero highlight.
type Feature struct {
	Icon  string
	Title string
	Text  string
}

// ServiceCard is one tile of the services grid.
type ServiceCard struct {
	Icon  string
	Title string
	Text  string
	CTA   string
}

// Stat is a headline number in the about section.
type Stat struct {
	Number string
	Label  string
}

// Reason is one entry of the "why choose us" grid.
type Reason struct {
	N     string
	Title string
	Text  string
}

// Content is the copy rendered on the landing page.
type Content struct {
	Brand        string
	Company      string
	Headline     string
	Lead         string
	Features     []Feature
	ServicesLead string
	Services     []ServiceCard
	AboutTitle   string
	AboutText    string
	Stats        []Stat
	Reasons      []Reason
}

// DefaultContent returns the agency's standard page copy.
func DefaultContent() Content {
	return Content{
		Brand:    "MGAgency",
		Company:  "Advsoft",
		Headline: "Affordable Website Designing & Software Development in India",
		Lead:     "We blend expertise, modern tech, and a product mindset to build high-quality websites, web apps, and mobile experiences that scale with your business.",
		Features: []Feature{
			{Icon: "✨", Title: "We have the Expertise", Text: "Seasoned engineers & designers deliver reliably."},
			{Icon: "🧠", Title: "We have the Technology", Text: "Modern stacks, clean code, and automation."},
			{Icon: "🚀", Title: "We transform ideas", Text: "From concept to launch with measurable impact."},
		},
		ServicesLead: "A full-stack partner for your digital needs. Pick one or bundle a few. Our teams ship fast and iterate even faster.",
		Services: []ServiceCard{
			{Icon: "📱", Title: "Website Designing", Text: "Modern, responsive, and accessible websites tailored to your brand.", CTA: "Upgrade your website"},
			{Icon: "💻", Title: "Software Development", Text: "Robust web apps, APIs, and internal tools using battle-tested stacks.", CTA: "See how we build"},
			{Icon: "🔎", Title: "SEO Optimization", Text: "On-page, technical, and content SEO to improve visibility and ROI.", CTA: "Run my audit"},
			{Icon: "🛒", Title: "E-commerce Development", Text: "High-converting storefronts with smooth checkout and analytics.", CTA: "Boost my store"},
			{Icon: "📲", Title: "Mobile App Development", Text: "iOS/Android apps with shared codebases and native performance.", CTA: "Request a proposal"},
			{Icon: "🛠️", Title: "Legacy & Support", Text: "Refactors, migrations, and ongoing maintenance that de-risk delivery.", CTA: "Start now"},
		},
		AboutTitle: "Software Development",
		AboutText:  "We specialize in scalable architectures, TypeScript-first development, and automated CI/CD. Our delivery playbook blends agile rituals with a product mindset, so you get speed without sacrificing quality.",
		Stats: []Stat{
			{Number: "250+", Label: "Projects shipped"},
			{Number: "30%", Label: "Avg. faster TTM"},
			{Number: "98%", Label: "Client retention"},
		},
		Reasons: []Reason{
			{N: "1", Title: "Senior talent only", Text: "Work directly with experienced engineers and designers."},
			{N: "2", Title: "Transparent delivery", Text: "Weekly demos, burn-up charts, and clear acceptance criteria."},
			{N: "3", Title: "Design meets code", Text: "Systems thinking from UX to API contracts for fewer surprises."},
			{N: "4", Title: "Secure & scalable", Text: "OWASP-aware patterns, cloud native infra, and observability."},
		},
	}
}

// pageData is what the page template renders.
type pageData struct {
	Content
	Catalog []string
	Notice  *banner
	Year    int
}

type banner struct {
	Kind    string
	Message string
}

func bannerFor(outcome string) *banner {
	switch outcome {
	case "sent":
		return &banner{Kind: "success", Message: "Thanks! Your quote request has been sent."}
	case "failed":
		return &banner{Kind: "danger", Message: "Sorry, we couldn't send your request. Please try again."}
	case "invalid":
		return &banner{Kind: "warning", Message: "Please fill in your name, a valid email and your phone number."}
	default:
		return nil
	}
}
