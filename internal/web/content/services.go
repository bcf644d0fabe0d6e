// Package content holds the static site copy: the service catalogue, the
// portfolio case studies and the work highlight cards. Editing happens here,
// not in templates.
package content

// ProcessStep is one phase of a service engagement.
type ProcessStep struct {
	Title       string
	Description string
}

// Service is one entry of the agency's service catalogue, addressed by slug.
type Service struct {
	Slug            string
	Title           string
	Description     string
	LongDescription string
	Icon            string // icon name rendered by the templates
	Features        []string
	Benefits        []string
	Process         []ProcessStep
}

// serviceOrder fixes the display order on the services index.
var serviceOrder = []string{
	"digital-automation",
	"it-systems",
	"video-production",
	"branding",
	"marketing-strategy",
	"kol-endorsement",
	"performance-marketing",
}

var services = map[string]Service{
	"digital-automation": {
		Slug:            "digital-automation",
		Title:           "Digital Automation",
		Description:     "Streamline your operations with cutting-edge automation solutions",
		LongDescription: "Transform your business operations with our state-of-the-art digital automation solutions. We help organizations reduce manual work, minimize errors, and increase efficiency through intelligent automation.",
		Icon:            "bot",
		Features: []string{
			"Workflow Automation",
			"Process Optimization",
			"Custom Automation Solutions",
			"Integration Services",
			"RPA Implementation",
			"AI-Powered Automation",
		},
		Benefits: []string{
			"Increased Operational Efficiency",
			"Reduced Human Error",
			"Cost Savings",
			"Improved Customer Experience",
			"Scalable Solutions",
			"24/7 Operation Capability",
		},
		Process: []ProcessStep{
			{Title: "Assessment", Description: "We analyze your current processes and identify automation opportunities"},
			{Title: "Strategy", Description: "Develop a comprehensive automation roadmap aligned with your goals"},
			{Title: "Implementation", Description: "Deploy and integrate automation solutions seamlessly"},
			{Title: "Optimization", Description: "Continuous monitoring and improvement of automated processes"},
		},
	},
	"it-systems": {
		Slug:            "it-systems",
		Title:           "IT Systems",
		Description:     "Custom IT solutions designed to scale with your business",
		LongDescription: "Empower your business with robust, scalable IT systems tailored to your specific needs. We design and implement solutions that drive efficiency and growth.",
		Icon:            "brain",
		Features: []string{
			"Custom Software Development",
			"System Integration",
			"Cloud Solutions",
			"Infrastructure Management",
			"Security Implementation",
			"Technical Support",
		},
		Benefits: []string{
			"Improved Operational Efficiency",
			"Enhanced Security",
			"Scalable Architecture",
			"Reduced IT Costs",
			"Better Data Management",
			"Increased Productivity",
		},
		Process: []ProcessStep{
			{Title: "Analysis", Description: "Understanding your business needs and technical requirements"},
			{Title: "Design", Description: "Creating a comprehensive system architecture"},
			{Title: "Development", Description: "Building and testing your custom IT solution"},
			{Title: "Deployment", Description: "Implementing the solution with minimal disruption"},
		},
	},
	"video-production": {
		Slug:            "video-production",
		Title:           "Video Production",
		Description:     "Compelling visual content that tells your brand story",
		LongDescription: "Create engaging video content that captures your audience's attention and effectively communicates your message. From concept to final delivery, we handle every aspect of video production.",
		Icon:            "video",
		Features: []string{
			"Corporate Videos",
			"Commercial Production",
			"Social Media Content",
			"Event Coverage",
			"Animation",
			"Drone Footage",
		},
		Benefits: []string{
			"Professional Quality Content",
			"Increased Engagement",
			"Brand Storytelling",
			"Multi-Platform Optimization",
			"High-Impact Messaging",
			"Visual Brand Building",
		},
		Process: []ProcessStep{
			{Title: "Pre-Production", Description: "Planning, scripting, and storyboarding"},
			{Title: "Production", Description: "Professional filming with high-end equipment"},
			{Title: "Post-Production", Description: "Editing, effects, and final touches"},
			{Title: "Delivery", Description: "Multiple format exports for various platforms"},
		},
	},
	"branding": {
		Slug:            "branding",
		Title:           "Branding",
		Description:     "Build a strong, memorable brand identity that resonates",
		LongDescription: "Develop a powerful brand identity that sets you apart from competitors and connects with your target audience. Our branding solutions are strategic, creative, and impactful.",
		Icon:            "palette",
		Features: []string{
			"Brand Strategy",
			"Visual Identity Design",
			"Brand Guidelines",
			"Logo Design",
			"Brand Voice Development",
			"Brand Architecture",
		},
		Benefits: []string{
			"Strong Market Positioning",
			"Brand Recognition",
			"Consistent Brand Message",
			"Emotional Connection",
			"Competitive Advantage",
			"Long-term Brand Value",
		},
		Process: []ProcessStep{
			{Title: "Discovery", Description: "Understanding your brand values and vision"},
			{Title: "Strategy", Description: "Developing your brand positioning and strategy"},
			{Title: "Design", Description: "Creating your visual brand elements"},
			{Title: "Implementation", Description: "Rolling out your new brand identity"},
		},
	},
	"marketing-strategy": {
		Slug:            "marketing-strategy",
		Title:           "Marketing Strategy",
		Description:     "Data-driven strategies to achieve your business goals",
		LongDescription: "Develop comprehensive marketing strategies that drive results. Our data-driven approach ensures your marketing efforts are targeted, effective, and measurable.",
		Icon:            "line-chart",
		Features: []string{
			"Market Research",
			"Competitor Analysis",
			"Campaign Planning",
			"Channel Strategy",
			"Budget Optimization",
			"Performance Tracking",
		},
		Benefits: []string{
			"Targeted Campaigns",
			"Better ROI",
			"Market Insights",
			"Competitive Edge",
			"Measurable Results",
			"Sustainable Growth",
		},
		Process: []ProcessStep{
			{Title: "Research", Description: "Market and competitor analysis"},
			{Title: "Planning", Description: "Strategy development and goal setting"},
			{Title: "Execution", Description: "Campaign implementation across channels"},
			{Title: "Analysis", Description: "Performance monitoring and optimization"},
		},
	},
	"kol-endorsement": {
		Slug:            "kol-endorsement",
		Title:           "KOL Endorsement",
		Description:     "Connect with influential voices in your industry",
		LongDescription: "Leverage the power of Key Opinion Leaders to amplify your brand message and reach new audiences. We connect you with the right influencers for authentic partnerships.",
		Icon:            "users",
		Features: []string{
			"Influencer Selection",
			"Campaign Management",
			"Content Strategy",
			"Performance Tracking",
			"Relationship Building",
			"ROI Analysis",
		},
		Benefits: []string{
			"Extended Reach",
			"Authentic Advocacy",
			"Trust Building",
			"Targeted Exposure",
			"Enhanced Credibility",
			"Social Proof",
		},
		Process: []ProcessStep{
			{Title: "Selection", Description: "Identifying the right KOLs for your brand"},
			{Title: "Outreach", Description: "Establishing partnerships and agreements"},
			{Title: "Execution", Description: "Managing campaign delivery and content"},
			{Title: "Reporting", Description: "Measuring campaign impact and results"},
		},
	},
	"performance-marketing": {
		Slug:            "performance-marketing",
		Title:           "Performance Marketing",
		Description:     "Results-focused campaigns that drive real ROI",
		LongDescription: "Drive measurable results with our performance marketing solutions. We focus on data-driven campaigns that deliver clear ROI and business growth.",
		Icon:            "megaphone",
		Features: []string{
			"PPC Campaigns",
			"Social Media Advertising",
			"Conversion Optimization",
			"Retargeting",
			"Analytics & Tracking",
			"A/B Testing",
		},
		Benefits: []string{
			"Measurable Results",
			"Cost-Effective",
			"Real-Time Optimization",
			"Targeted Reach",
			"Higher Conversion Rates",
			"Clear ROI",
		},
		Process: []ProcessStep{
			{Title: "Setup", Description: "Campaign structure and tracking implementation"},
			{Title: "Launch", Description: "Campaign activation and monitoring"},
			{Title: "Optimize", Description: "Continuous performance improvement"},
			{Title: "Scale", Description: "Expanding successful campaigns"},
		},
	},
}

// Services returns the full catalogue in display order.
func Services() []Service {
	out := make([]Service, 0, len(serviceOrder))
	for _, slug := range serviceOrder {
		out = append(out, services[slug])
	}
	return out
}

// ServiceBySlug looks up a single service page.
func ServiceBySlug(slug string) (Service, bool) {
	s, ok := services[slug]
	return s, ok
}
