package console

import (
	"context"
	"fmt"
)

func (m *Menu) userMenu(ctx context.Context) {
	for {
		m.printHeader("User Management")
		fmt.Fprintln(m.out, "1. List Users")
		fmt.Fprintln(m.out, "2. Add User")
		fmt.Fprintln(m.out, "3. Switch User")
		fmt.Fprintln(m.out, "4. Delete User")
		fmt.Fprintln(m.out, "5. Show Current User")
		fmt.Fprintln(m.out, "6. Back to Main Menu")

		choice, ok := m.readInt("Enter your choice: ", 1, 6)
		if !ok {
			return
		}
		switch choice {
		case 1:
			users, err := m.uc.GetAllUsers(ctx)
			if err != nil {
				m.printErr(err)
				continue
			}
			m.renderUsers(users)
		case 2:
			m.addUser(ctx)
		case 3:
			email, ok := m.readNonEmpty("Email to switch to: ")
			if !ok {
				return
			}
			switched, err := m.uc.SwitchUser(ctx, email)
			if err != nil {
				m.printErr(err)
				continue
			}
			if switched {
				m.printOK("Switched user")
			} else {
				fmt.Fprintln(m.out, "No user with that email")
			}
		case 4:
			email, ok := m.readNonEmpty("Email to delete: ")
			if !ok {
				return
			}
			removed, err := m.uc.DeleteUser(ctx, email)
			if err != nil {
				m.printErr(err)
				continue
			}
			if removed {
				m.printOK("User deleted")
			} else {
				fmt.Fprintln(m.out, "Not deleted (unknown email or current user)")
			}
		case 5:
			current, err := m.uc.CurrentUser(ctx)
			if err != nil {
				m.printErr(err)
				continue
			}
			fmt.Fprintf(m.out, "Current user: %s <%s> (%s)\n", current.Name, current.Email, current.Role)
		case 6:
			return
		}
	}
}

func (m *Menu) addUser(ctx context.Context) {
	name, ok := m.readNonEmpty("Name: ")
	if !ok {
		return
	}
	email, ok := m.readNonEmpty("Email: ")
	if !ok {
		return
	}
	role, ok := m.readNonEmpty("Role (admin/regular): ")
	if !ok {
		return
	}

	isAdmin, err := m.uc.ValidateRole(role)
	if err != nil {
		m.printErr(err)
		return
	}
	user, err := m.uc.CreateUser(ctx, name, email, isAdmin)
	if err != nil {
		m.printErr(err)
		return
	}
	if _, err := m.uc.AddUser(ctx, user); err != nil {
		m.printErr(err)
		return
	}
	m.printOK(fmt.Sprintf("User %s added", user.ID))
}
