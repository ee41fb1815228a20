package models

import (
	"strconv"

	"ims/pkg/domain"
)

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func PolicyRequestApprovedForCustomer(availablePolicyID domain.AvailablePolicyID, requestID domain.PolicyRequestID, agentID domain.AgentID) string {
	return "Congratulations! Your policy request for Registering a new policy of Available Policy ID " +
		itoa(int64(availablePolicyID)) + " with Request ID " + itoa(int64(requestID)) +
		" has been approved and Assigned with an Agent" + itoa(int64(agentID)) +
		". Please review the details and proceed with the next steps."
}

func PolicyRequestApprovedForAgent(customerID domain.CustomerID, availablePolicyID domain.AvailablePolicyID, requestID domain.PolicyRequestID) string {
	return "Dear Agent, you have been assigned a new policy for Customer ID " + itoa(int64(customerID)) +
		". The details are as follows:Available Policy ID: " + itoa(int64(availablePolicyID)) +
		", Policy Request ID: " + itoa(int64(requestID)) + ". Please review and take the necessary actions."
}

func PolicyRequestRejected(availablePolicyID domain.AvailablePolicyID, requestID domain.PolicyRequestID) string {
	return "Your policy request For the AvailablePolicyId " + itoa(int64(availablePolicyID)) +
		" with ID " + itoa(int64(requestID)) + " has been rejected."
}

func ClaimApprovedForCustomer(policyID domain.PolicyID) string {
	return "Great news! Your claim for Policy ID " + itoa(int64(policyID)) +
		" has been successfully approved. Thank you for your patience."
}

func ClaimApprovedForAgent(policyID domain.PolicyID, customerID domain.CustomerID) string {
	return "Good news! The claim associated with Policy ID " + itoa(int64(policyID)) +
		" for Customer ID " + itoa(int64(customerID)) + " has been approved. Thank you for your diligent work."
}

func ClaimRejectedForCustomer(policyID domain.PolicyID) string {
	return "We regret to inform you that your claim for Policy ID " + itoa(int64(policyID)) +
		" has been rejected. Please contact us for further assistance."
}

func ClaimRejectedForAgent(policyID domain.PolicyID, customerID domain.CustomerID) string {
	return "Unfortunately, the claim associated with Policy ID " + itoa(int64(policyID)) +
		" for Customer ID " + itoa(int64(customerID)) +
		" has been rejected. Please review the details and take necessary actions."
}
