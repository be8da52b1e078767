package contacttype

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/db/controller/contact"
)

var propagatedContacts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "mycontacts_propagated_contacts_total",
	Help: "Number of contacts rewritten after a contact type was renamed.",
})

// propagate rewrites the entries named previousName of all active contacts to name and iconPath.
// Contacts are saved one by one.
func propagate(tx *gorm.DB, previousName, name, iconPath string) error {
	contacts, err := contact.FindWithTypeName(tx, previousName)
	if err != nil {
		return err
	}

	for i := range contacts {
		contacts[i].Contacts.Rename(previousName, name, iconPath)

		if err = contact.Save(tx, &contacts[i]); err != nil {
			return err
		}
	}

	propagatedContacts.Add(float64(len(contacts)))

	log.Debug().
		Str("previous_name", previousName).
		Str("name", name).
		Int("contacts", len(contacts)).
		Msg("contact type propagated to contacts")

	return nil
}
