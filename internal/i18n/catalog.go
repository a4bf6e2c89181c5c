// catalog.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. English keys double as the English text.
const (
	MsgAutoRemoved      = "Auto removed due to lack of owner contact."
	MsgDescriptionBlank = "Description cannot be blank"
	MsgContactRequired  = "Waiting list entries must have a contact"
	MsgDatePutOnBlank   = "Date put on cannot be blank"
	MsgRecordChanged    = "This record has been changed by another user, please reload."
	MsgWaitingListName  = "Waiting List %d"
	MsgMovedToAnimal    = "Moved to animal record %s"
	msgDays             = "%d days"
	msgWeeks            = "%d weeks"
)

var translations = map[language.Tag]map[string]string{
	language.French: {
		MsgAutoRemoved:      "Retiré automatiquement faute de contact avec le propriétaire.",
		MsgDescriptionBlank: "La description ne peut pas être vide",
		MsgContactRequired:  "Les entrées de la liste d'attente doivent avoir un contact",
		MsgDatePutOnBlank:   "La date d'inscription ne peut pas être vide",
		MsgRecordChanged:    "Cet enregistrement a été modifié par un autre utilisateur, veuillez recharger.",
		MsgWaitingListName:  "Liste d'attente %d",
		MsgMovedToAnimal:    "Transféré vers la fiche animal %s",
	},
	language.German: {
		MsgAutoRemoved:      "Automatisch entfernt, da kein Kontakt zum Besitzer bestand.",
		MsgDescriptionBlank: "Die Beschreibung darf nicht leer sein",
		MsgContactRequired:  "Einträge auf der Warteliste benötigen einen Kontakt",
		MsgDatePutOnBlank:   "Das Aufnahmedatum darf nicht leer sein",
		MsgRecordChanged:    "Dieser Datensatz wurde von einem anderen Benutzer geändert, bitte neu laden.",
		MsgWaitingListName:  "Warteliste %d",
		MsgMovedToAnimal:    "In Tierakte %s verschoben",
	},
	language.Spanish: {
		MsgAutoRemoved:      "Eliminado automáticamente por falta de contacto con el propietario.",
		MsgDescriptionBlank: "La descripción no puede estar vacía",
		MsgContactRequired:  "Las entradas de la lista de espera deben tener un contacto",
		MsgDatePutOnBlank:   "La fecha de alta no puede estar vacía",
		MsgRecordChanged:    "Este registro ha sido modificado por otro usuario, por favor recargue.",
		MsgWaitingListName:  "Lista de espera %d",
		MsgMovedToAnimal:    "Movido a la ficha del animal %s",
	},
}

var durations = map[language.Tag][4]string{
	language.English: {"%d day", "%d days", "%d week", "%d weeks"},
	language.French:  {"%d jour", "%d jours", "%d semaine", "%d semaines"},
	language.German:  {"%d Tag", "%d Tage", "%d Woche", "%d Wochen"},
	language.Spanish: {"%d día", "%d días", "%d semana", "%d semanas"},
}

func init() {
	for tag, msgs := range translations {
		for key, text := range msgs {
			_ = message.SetString(tag, key, text)
		}
	}
	for tag, d := range durations {
		_ = message.Set(tag, msgDays, plural.Selectf(1, "%d", plural.One, d[0], plural.Other, d[1]))
		_ = message.Set(tag, msgWeeks, plural.Selectf(1, "%d", plural.One, d[2], plural.Other, d[3]))
	}
}
