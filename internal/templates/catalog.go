package templates

// Template is a named pair of subject/body patterns. Placeholders use
// the {variable_name} form and are substituted by the Renderer.
type Template struct {
	Name      string
	Category  string
	Subject   string
	Body      string
	Variables []string
}

// Catalog is an immutable lookup from template name to its patterns.
// Build one with BuiltinCatalog and inject it; there is no mutable
// package-level registry.
type Catalog struct {
	entries map[string]Template
}

func NewCatalog(entries []Template) Catalog {
	m := make(map[string]Template, len(entries))
	for _, t := range entries {
		m[t.Name] = t
	}
	return Catalog{entries: m}
}

func (c Catalog) Get(name string) (Template, bool) {
	t, ok := c.entries[name]
	return t, ok
}

func (c Catalog) List() []Template {
	out := make([]Template, 0, len(c.entries))
	for _, name := range builtinOrder {
		if t, ok := c.entries[name]; ok {
			out = append(out, t)
		}
	}
	for name, t := range c.entries {
		if !isBuiltinName(name) {
			out = append(out, t)
		}
	}
	return out
}

var builtinOrder = []string{
	NameInitialInquiry,
	NameProjectKickoff,
	NameProgressUpdate,
	NameDeliveryNotification,
	NameFollowUp,
}

func isBuiltinName(name string) bool {
	for _, n := range builtinOrder {
		if n == name {
			return true
		}
	}
	return false
}

const (
	NameInitialInquiry       = "initial_inquiry"
	NameProjectKickoff       = "project_kickoff"
	NameProgressUpdate       = "progress_update"
	NameDeliveryNotification = "delivery_notification"
	NameFollowUp             = "follow_up"
)

// BuiltinCatalog returns the five stock client-communication templates.
func BuiltinCatalog() Catalog {
	return NewCatalog([]Template{
		{
			Name:     NameInitialInquiry,
			Category: "inquiry",
			Subject:  "Thank you for your interest in my {service_type} services",
			Body: `Hi {client_name},

Thank you for your interest in my {service_type} services! I'm excited to help you achieve your business goals.

With my extensive experience in data analytics and business intelligence, I deliver results that drive real business impact.

To provide the best recommendations, could you please share:
- Your industry and business objectives
- Specific requirements or challenges
- Timeline for completion
- Any existing data or materials

I typically respond within 1-2 hours and would love to discuss your project in detail.

Looking forward to working with you!

Best regards,
{seller_name}`,
			Variables: []string{"client_name", "service_type", "seller_name"},
		},
		{
			Name:     NameProjectKickoff,
			Category: "kickoff",
			Subject:  "Project Kickoff - {project_title}",
			Body: `Hi {client_name},

Great! I'm excited to start working on your {project_type} project. Here's what happens next:

**Project Details:**
- Project: {project_title}
- Package: {package_type}
- Delivery Date: {due_date}

**Next Steps:**
1. I'll send you a detailed questionnaire within 2 hours
2. Once completed, I'll begin the analysis/research
3. I'll provide progress updates every 24-48 hours
4. Final delivery will be on {due_date}

**What You Can Expect:**
- Professional, comprehensive analysis
- Clear, actionable recommendations
- Regular communication throughout the project
- High-quality deliverables that exceed expectations

If you have any questions or additional requirements, please let me know immediately.

Let's create something amazing together!

Best regards,
{seller_name}`,
			Variables: []string{
				"client_name", "project_type", "project_title",
				"package_type", "due_date", "seller_name",
			},
		},
		{
			Name:     NameProgressUpdate,
			Category: "progress",
			Subject:  "Progress Update - {project_title}",
			Body: `Hi {client_name},

I wanted to provide you with a quick update on your {project_type} project.

**Current Status:**
- Project is {progress_percentage}% complete
- Currently working on: {current_task}
- On track for delivery: {due_date}

**Completed This Week:**
{completed_tasks}

**Next Steps:**
{next_steps}

If you have any questions or need clarification on anything, please don't hesitate to reach out.

Best regards,
{seller_name}`,
			Variables: []string{
				"client_name", "project_type", "project_title", "due_date",
				"progress_percentage", "current_task", "completed_tasks",
				"next_steps", "seller_name",
			},
		},
		{
			Name:     NameDeliveryNotification,
			Category: "delivery",
			Subject:  "Project Complete - {project_title}",
			Body: `Hi {client_name},

Excellent news! Your {project_type} project is now complete and ready for delivery.

**What's Included:**
{deliverables_list}

**Key Findings:**
{key_findings}

**Next Steps:**
1. Please review all deliverables
2. Let me know if you need any clarifications
3. I'm available for a follow-up call if needed

I'm confident these insights will drive significant value for your business. Please don't hesitate to reach out if you have any questions.

Thank you for choosing my services!

Best regards,
{seller_name}`,
			Variables: []string{
				"client_name", "project_type", "project_title",
				"deliverables_list", "key_findings", "seller_name",
			},
		},
		{
			Name:     NameFollowUp,
			Category: "follow_up",
			Subject:  "Following up on your {project_type} project",
			Body: `Hi {client_name},

I hope you've had a chance to review the {project_type} deliverables I sent last week.

I wanted to follow up to see:
- How are you finding the recommendations?
- Do you need any clarification or additional analysis?
- Are there any follow-up projects I can help with?

**Additional Services That Might Interest You:**
- Monthly performance monitoring
- Implementation support
- Advanced analytics and forecasting
- Strategic planning sessions

I'm here to support your continued success. Please let me know if there's anything else I can help with.

Best regards,
{seller_name}`,
			Variables: []string{"client_name", "project_type", "seller_name"},
		},
	})
}
