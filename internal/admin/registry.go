// Package admin declares the dashboard registry: the static description of
// every management tab the SPA renders. The server owns this shape so the
// dashboard and the API cannot drift apart on columns or form fields.
package admin

// Field kinds understood by the dashboard's edit form.
const (
	KindText     = "text"
	KindNumber   = "number"
	KindTextarea = "textarea"
	KindCheckbox = "checkbox"
)

// Removal policies. Products are archived so historical orders keep
// resolving; every other tab hard-deletes its rows.
const (
	RemovalArchive = "archive"
	RemovalDelete  = "delete"
)

type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

type Tab struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	Columns       []Column `json:"columns"`
	Fields        []Field  `json:"fields"`
	RemovalPolicy string   `json:"removal_policy"`
}

// Tabs returns the dashboard registry in display order.
func Tabs() []Tab {
	return []Tab{
		{
			Name:  "products",
			Title: "Products",
			Columns: []Column{
				{Key: "id", Header: "ID"},
				{Key: "name", Header: "Name"},
				{Key: "price", Header: "Price"},
				{Key: "weaver", Header: "Weaver"},
				{Key: "community", Header: "Community"},
				{Key: "status", Header: "Status"},
			},
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: KindText},
				{Name: "price", Label: "Price", Kind: KindNumber},
				{Name: "description", Label: "Description", Kind: KindTextarea},
				{Name: "image", Label: "Image URL", Kind: KindText},
				{Name: "weaver", Label: "Weaver", Kind: KindText},
				{Name: "community", Label: "Community", Kind: KindText},
			},
			RemovalPolicy: RemovalArchive,
		},
		{
			Name:  "videos",
			Title: "Videos",
			Columns: []Column{
				{Key: "id", Header: "ID"},
				{Key: "title", Header: "Title"},
				{Key: "filepath", Header: "File"},
			},
			Fields: []Field{
				{Name: "title", Label: "Title", Kind: KindText},
				{Name: "description", Label: "Description", Kind: KindTextarea},
				{Name: "filepath", Label: "File path", Kind: KindText},
			},
			RemovalPolicy: RemovalDelete,
		},
		{
			Name:  "infographics",
			Title: "Infographics",
			Columns: []Column{
				{Key: "id", Header: "ID"},
				{Key: "title", Header: "Title"},
				{Key: "image_path", Header: "Image"},
			},
			Fields: []Field{
				{Name: "title", Label: "Title", Kind: KindText},
				{Name: "image_path", Label: "Image path", Kind: KindText},
			},
			RemovalPolicy: RemovalDelete,
		},
		{
			Name:  "fundraising",
			Title: "Fundraising",
			Columns: []Column{
				{Key: "id", Header: "ID"},
				{Key: "title", Header: "Title"},
				{Key: "goal_amount", Header: "Goal"},
				{Key: "collected_amount", Header: "Collected"},
				{Key: "supporters", Header: "Supporters"},
				{Key: "status", Header: "Status"},
			},
			Fields: []Field{
				{Name: "title", Label: "Title", Kind: KindText},
				{Name: "description", Label: "Description", Kind: KindTextarea},
				{Name: "goal_amount", Label: "Goal amount", Kind: KindNumber},
				{Name: "days_left", Label: "Days left", Kind: KindNumber},
				{Name: "image", Label: "Image URL", Kind: KindText},
				{Name: "is_urgent", Label: "Urgent", Kind: KindCheckbox},
			},
			RemovalPolicy: RemovalDelete,
		},
		{
			Name:  "orders",
			Title: "Orders",
			Columns: []Column{
				{Key: "id", Header: "Order"},
				{Key: "customer_name", Header: "Customer"},
				{Key: "total", Header: "Total"},
				{Key: "payment_method", Header: "Payment"},
				{Key: "status", Header: "Status"},
			},
			Fields: []Field{
				{Name: "status", Label: "Status", Kind: KindText},
			},
			RemovalPolicy: RemovalDelete,
		},
		{
			Name:  "users",
			Title: "Users",
			Columns: []Column{
				{Key: "id", Header: "ID"},
				{Key: "name", Header: "Name"},
				{Key: "email", Header: "Email"},
				{Key: "is_admin", Header: "Admin"},
			},
			Fields: []Field{
				{Name: "name", Label: "Name", Kind: KindText},
				{Name: "email", Label: "Email", Kind: KindText},
				{Name: "password", Label: "Password", Kind: KindText},
				{Name: "address", Label: "Address", Kind: KindTextarea},
				{Name: "is_admin", Label: "Admin", Kind: KindCheckbox},
			},
			RemovalPolicy: RemovalDelete,
		},
	}
}
