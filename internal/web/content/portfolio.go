package content

// WorkCard is one of the highlight tiles on the work overview page.
type WorkCard struct {
	ID          string
	Title       string
	Description string
	Image       string
	Category    string
}

// CasePhase is one step of a case study's delivery narrative.
type CasePhase struct {
	Phase       string
	Description string
}

// CaseResult is a headline outcome metric.
type CaseResult struct {
	Metric string
	Value  string
}

// CaseStudy is a full portfolio entry, addressed by id.
type CaseStudy struct {
	ID           string
	Title        string
	Category     string // slug of the related service
	Description  string
	Thumbnail    string
	Images       []string
	Background   string
	Challenge    string
	Objectives   []string
	Approach     string
	Process      []CasePhase
	Deliverables []string
	Results      []CaseResult
	ClientName   string
	ClientLogo   string
}

var workCards = []WorkCard{
	{
		ID:          "branding",
		Title:       "Branding & Design",
		Description: "We create stunning visual identities that capture your brand essence and resonate with your audience.",
		Image:       "/images/branding.jpg",
		Category:    "branding",
	},
	{
		ID:          "marketplace",
		Title:       "Online Marketplace",
		Description: "We build and optimize e-commerce solutions that drive conversions and enhance the user experience.",
		Image:       "/images/online marketplace.jpg",
		Category:    "marketplace",
	},
	{
		ID:          "video",
		Title:       "Video Production",
		Description: "Our professional video content captivates audiences and communicates your message with impact.",
		Image:       "/images/video production.jpg",
		Category:    "video",
	},
}

var caseStudies = []CaseStudy{
	{
		ID:          "ecommerce-automation",
		Title:       "E-commerce Automation",
		Category:    "digital-automation",
		Description: "Implemented automated inventory and order management systems, resulting in 40% operational cost reduction.",
		Thumbnail:   "/images/online marketplace.jpg",
		Images: []string{
			"/images/online marketplace.jpg",
			"/portfolio/ecommerce-detail-2.jpg",
			"/portfolio/ecommerce-detail-3.jpg",
			"/portfolio/ecommerce-detail-4.jpg",
		},
		Background: "TechRetail Co. was struggling with manual inventory management and order processing, leading to errors, delays, and high operational costs. They needed a comprehensive automation solution to streamline their e-commerce operations.",
		Challenge:  "The client needed to automate their entire e-commerce workflow while ensuring seamless integration with their existing ERP system and maintaining data accuracy across multiple sales channels.",
		Objectives: []string{
			"Reduce operational costs by at least 30%",
			"Eliminate manual data entry errors",
			"Decrease order processing time by 50%",
			"Implement real-time inventory synchronization across all channels",
		},
		Approach: "We developed a custom automation solution that integrated with their existing systems while introducing new technologies to streamline their workflow.",
		Process: []CasePhase{
			{Phase: "Discovery & Analysis", Description: "We conducted a thorough analysis of their existing workflows, identifying bottlenecks and opportunities for automation."},
			{Phase: "Solution Design", Description: "We designed a custom automation architecture that integrated with their existing ERP while adding new capabilities."},
			{Phase: "Development & Integration", Description: "Our team built the automation platform with APIs connecting all sales channels and backend systems."},
			{Phase: "Testing & Optimization", Description: "We rigorously tested the system under various scenarios and optimized for performance and reliability."},
			{Phase: "Deployment & Training", Description: "We rolled out the solution in phases and provided comprehensive training to the client team."},
		},
		Deliverables: []string{
			"Custom inventory management system",
			"Order processing automation platform",
			"Multi-channel integration APIs",
			"Real-time reporting dashboard",
			"Staff training and documentation",
		},
		Results: []CaseResult{
			{Metric: "Cost Reduction", Value: "40%"},
			{Metric: "Order Processing Speed", Value: "60% Faster"},
			{Metric: "Inventory Accuracy", Value: "99.9%"},
		},
		ClientName: "TechRetail Co.",
		ClientLogo: "/clients/techretail.svg",
	},
	{
		ID:          "brand-transformation",
		Title:       "Brand Transformation",
		Category:    "branding",
		Description: "Complete brand overhaul including visual identity, packaging, and digital presence.",
		Thumbnail:   "/images/branding.jpg",
		Images: []string{
			"/images/branding.jpg",
			"/portfolio/branding-detail-2.jpg",
			"/portfolio/branding-detail-3.jpg",
			"/portfolio/branding-detail-4.jpg",
		},
		Background: "FreshStart Foods had been in the market for over a decade but was struggling with outdated branding that no longer resonated with their target audience. They needed a complete brand refresh to regain market relevance and appeal to health-conscious consumers.",
		Challenge:  "The client needed to transform their brand identity without losing recognition among existing customers while attracting a younger, health-focused demographic.",
		Objectives: []string{
			"Create a modern, appealing visual identity",
			"Develop a cohesive brand strategy",
			"Increase brand recognition by 50%",
			"Boost social media engagement by 100%",
			"Increase sales by 30% within 6 months",
		},
		Approach: "We implemented a comprehensive brand transformation strategy focusing on authentic storytelling, visual consistency, and digital-first experiences.",
		Process: []CasePhase{
			{Phase: "Brand Audit & Research", Description: "We analyzed current brand perception and conducted market research to identify opportunities."},
			{Phase: "Brand Strategy Development", Description: "We crafted a new brand positioning, messaging framework, and tone of voice guidelines."},
			{Phase: "Visual Identity Design", Description: "Our design team created a new logo, color palette, typography, and visual system."},
			{Phase: "Packaging Redesign", Description: "We redesigned product packaging to reflect the new brand identity and improve shelf appeal."},
			{Phase: "Digital Presence Overhaul", Description: "We reimagined their website, social media presence, and digital marketing materials."},
		},
		Deliverables: []string{
			"Complete brand guidelines",
			"Logo and visual identity system",
			"Packaging design for 15 products",
			"Website redesign",
			"Social media strategy and templates",
			"Marketing collateral",
		},
		Results: []CaseResult{
			{Metric: "Brand Recognition", Value: "85%"},
			{Metric: "Social Media Growth", Value: "150%"},
			{Metric: "Sales Increase", Value: "3x"},
		},
		ClientName: "FreshStart Foods",
		ClientLogo: "/clients/freshstart.svg",
	},
	{
		ID:          "video-marketing-campaign",
		Title:       "Video Marketing Campaign",
		Category:    "video-production",
		Description: "Created viral video content series that showcased product benefits and user success stories.",
		Thumbnail:   "/images/video production.jpg",
		Images: []string{
			"/images/video production.jpg",
			"/portfolio/video-detail-2.jpg",
			"/portfolio/video-detail-3.jpg",
			"/portfolio/video-detail-4.jpg",
		},
		Background: "SportsFit was launching a new line of fitness equipment but struggled to demonstrate its unique benefits through traditional marketing channels. They needed a dynamic way to showcase the products in action and build buzz around the launch.",
		Challenge:  "The client needed to create compelling video content that would demonstrate product features, inspire potential customers, and generate significant social media engagement.",
		Objectives: []string{
			"Create a series of high-quality video content",
			"Generate at least 500,000 views across platforms",
			"Achieve 20% engagement rate on social media",
			"Drive pre-orders before official launch",
			"Establish brand as innovative in fitness space",
		},
		Approach: "We developed a multi-format video campaign featuring influencer collaborations, user testimonials, and cinematic product demonstrations.",
		Process: []CasePhase{
			{Phase: "Campaign Strategy", Description: "We developed a comprehensive video content strategy aligned with marketing objectives."},
			{Phase: "Pre-Production", Description: "Our team managed script development, location scouting, talent casting, and technical planning."},
			{Phase: "Production", Description: "We executed high-quality filming across multiple locations with professional crews."},
			{Phase: "Post-Production", Description: "Our editors created compelling narratives with professional color grading, sound design, and visual effects."},
			{Phase: "Distribution Strategy", Description: "We implemented a phased release across multiple platforms with optimized formats for each channel."},
		},
		Deliverables: []string{
			"Brand anthem video (90 seconds)",
			"Product demonstration series (5 videos)",
			"User testimonial collection (8 videos)",
			"Social media shorts (20 videos)",
			"Behind-the-scenes content",
			"Optimization for multiple platforms",
		},
		Results: []CaseResult{
			{Metric: "Total Views", Value: "1M+"},
			{Metric: "Engagement Rate", Value: "200%"},
			{Metric: "Conversion Rate", Value: "45%"},
		},
		ClientName: "SportsFit",
		ClientLogo: "/clients/sportsfit.svg",
	},
}

// WorkCards returns the work overview tiles in display order.
func WorkCards() []WorkCard {
	return workCards
}

// CaseStudies returns every portfolio entry in display order.
func CaseStudies() []CaseStudy {
	return caseStudies
}

// CaseStudyByID looks up a single case study page.
func CaseStudyByID(id string) (CaseStudy, bool) {
	for _, cs := range caseStudies {
		if cs.ID == id {
			return cs, true
		}
	}
	return CaseStudy{}, false
}

// CaseStudiesByCategory filters the portfolio by the related service slug.
func CaseStudiesByCategory(category string) []CaseStudy {
	var out []CaseStudy
	for _, cs := range caseStudies {
		if cs.Category == category {
			out = append(out, cs)
		}
	}
	return out
}
